package main

import (
	"context"
	"testing"
	"time"
)

func TestNotifyContext_ParentCancel(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := notifyContext(parent)
	defer stop()

	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not canceled after parent cancel")
	}
}

func TestNotifyContext_Stop(t *testing.T) {
	t.Parallel()

	ctx, stop := notifyContext(context.Background())
	stop()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not canceled after stop")
	}
}
