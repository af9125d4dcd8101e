package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	docres "github.com/alnah/go-docres"
	"github.com/alnah/go-docres/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "unexpected error", err: errors.New("boom"), want: ExitGeneral},
		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "permission denied", err: os.ErrPermission, want: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse failure", err: config.ErrConfigParse, want: ExitUsage},
		{name: "invalid bundle name", err: config.ErrInvalidBundle, want: ExitUsage},
		{name: "no templates", err: docres.ErrNoTemplates, want: ExitUsage},
		{name: "invalid base directory", err: docres.ErrInvalidBaseDir, want: ExitUsage},
		{name: "output directory required", err: docres.ErrOutputDirRequired, want: ExitUsage},
		{name: "invalid filter", err: docres.ErrInvalidFilter, want: ExitUsage},
		{name: "wrapped sentinel", err: fmt.Errorf("context: %w", docres.ErrNoTemplates), want: ExitUsage},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
