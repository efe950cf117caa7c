package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitGeneral},
		{"conversion failed", ErrConversionFailed, ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
		{"not exist", os.ErrNotExist, ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write html", ErrWriteHTML, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid workers", ErrInvalidWorkerCount, ExitUsage},
		{"unknown engine", ErrUnknownEngine, ExitUsage},
		{"stdin mixed", ErrStdinMixed, ExitUsage},
		{"unknown style", md2html.ErrUnknownStyle, ExitUsage},
		{"unknown theme", assets.ErrThemeNotFound, ExitUsage},
		{"invalid theme name", assets.ErrInvalidAssetName, ExitUsage},
		{"invalid theme dir", assets.ErrInvalidBasePath, ExitUsage},
		{"wrapped", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},
		{"double wrapped", fmt.Errorf("a: %w", fmt.Errorf("b: %w", ErrWriteHTML)), ExitIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
