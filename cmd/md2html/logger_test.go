package main

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    []string
		exclude []string
	}{
		{"default", false, false, []string{"[INFO] i", "[WARN] w", "[ERROR] e"}, []string{"[DEBUG]"}},
		{"quiet", true, false, []string{"[ERROR] e"}, []string{"[INFO]", "[WARN]", "[DEBUG]"}},
		{"verbose", false, true, []string{"[DEBUG] d", "[INFO] i", "[WARN] w", "[ERROR] e"}, nil},
		{"quiet wins", true, true, []string{"[ERROR] e"}, []string{"[DEBUG]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l := newLogger(&buf, tt.quiet, tt.verbose)
			l.Debugf("d")
			l.Infof("i")
			l.Warnf("w")
			l.Errorf("e")

			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w+"\n") {
					t.Errorf("output %q should contain %q", buf.String(), w)
				}
			}
			for _, x := range tt.exclude {
				if strings.Contains(buf.String(), x) {
					t.Errorf("output %q should not contain %q", buf.String(), x)
				}
			}
		})
	}
}

func TestLogger_Flags(t *testing.T) {
	t.Parallel()

	if l := newLogger(nil, true, false); !l.Quiet() || l.Verbose() {
		t.Error("quiet logger: Quiet() should be true, Verbose() false")
	}
	if l := newLogger(nil, false, true); l.Quiet() || !l.Verbose() {
		t.Error("verbose logger: Verbose() should be true, Quiet() false")
	}
}

func TestLogger_Concurrent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newLogger(&buf, false, false)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Infof("line %d", i)
		}()
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 20 {
		t.Errorf("got %d lines, want 20", got)
	}
}
