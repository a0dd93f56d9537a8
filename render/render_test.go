package render

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Args(t *testing.T) {
	tests := []struct {
		name    string
		options Options
		want    []string
	}{
		{
			name:    "defaults",
			options: Options{Input: "out/contract.mmd"},
			want:    []string{"-i", "out/contract.mmd", "-o", "out/contract.svg"},
		},
		{
			name: "all flags",
			options: Options{
				Input:           "contract.mmd",
				Output:          "contract.png",
				Scale:           "2",
				Height:          "600",
				Width:           "800",
				BackgroundColor: "transparent",
				Quiet:           true,
			},
			want: []string{"-i", "contract.mmd", "-o", "contract.png", "-s", "2", "-H", "600", "-w", "800", "-b", "transparent", "-q"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.options.Args())
		})
	}
}

func TestCommand(t *testing.T) {
	cmd := Command(context.Background(), &Options{Input: "a.mmd", Binary: "/opt/bin/mmdc"})
	assert.Equal(t, []string{"/opt/bin/mmdc", "-i", "a.mmd", "-o", "a.svg"}, cmd.Args)

	cmd = Command(context.Background(), &Options{Input: "a.mmd"})
	assert.Equal(t, DefaultBinary, cmd.Args[0])
}

func TestRun_Errors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := Run(context.Background(), &Options{}, logger)
	require.Error(t, err)

	missing := filepath.Join(t.TempDir(), "no-such-renderer")
	_, err = Run(context.Background(), &Options{Input: "a.mmd", Binary: missing}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run")
}
