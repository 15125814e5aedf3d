package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"go.uber.org/zap/zaptest"

	"github.com/ironsheep/image-trim/internal/config"
	"github.com/ironsheep/image-trim/internal/trim"
)

func writeLogo(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	for y := 75; y < 125; y++ {
		for x := 75; x < 125; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}

	path := filepath.Join(dir, "logo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"not found", fmt.Errorf("%w: x", trim.ErrNotFound), exitNotFound},
		{"decode", fmt.Errorf("%w: x", trim.ErrDecode), exitDecode},
		{"empty", fmt.Errorf("%w: x", trim.ErrEmptyContent), exitEmptyContent},
		{"write", fmt.Errorf("%w: x", trim.ErrWrite), exitWrite},
		{"other", errors.New("boom"), exitFailure},
		{"cancelled", context.Canceled, exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestRun_Success(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Input:  writeLogo(t, dir),
		Output: filepath.Join(dir, "logo_trimmed.webp"),
	}

	var stdout bytes.Buffer
	code := run(context.Background(), cfg, &stdout, zaptest.NewLogger(t))

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "Original size: 200x200")
	assert.Contains(t, stdout.String(), "Trimmed size:  50x50")
	assert.FileExists(t, cfg.Output)
}

func TestRun_NotFound(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Input:  filepath.Join(dir, "missing.webp"),
		Output: filepath.Join(dir, "out.webp"),
	}

	var stdout bytes.Buffer
	code := run(context.Background(), cfg, &stdout, zaptest.NewLogger(t))

	assert.Equal(t, exitNotFound, code)
	assert.Equal(t, "File not found: "+cfg.Input+"\n", stdout.String())
	assert.NoFileExists(t, cfg.Output)
}

func TestApp_Flags(t *testing.T) {
	dir := t.TempDir()
	in := writeLogo(t, dir)
	out := filepath.Join(dir, "trimmed.webp")

	var stdout bytes.Buffer
	err := newApp(&stdout).Run([]string{
		"image-trim",
		"--env-file", filepath.Join(dir, "absent.env"),
		"--input", in,
		"-o", out,
		"--log-level", "error",
	})
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Saved to:      "+out)
	assert.FileExists(t, out)
}

func TestApp_ExitCodeOnFailure(t *testing.T) {
	var gotCode int
	orig := cli.OsExiter
	cli.OsExiter = func(code int) { gotCode = code }
	t.Cleanup(func() { cli.OsExiter = orig })

	dir := t.TempDir()
	blank := filepath.Join(dir, "blank.png")
	f, err := os.Create(blank)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 8, 8))))
	require.NoError(t, f.Close())

	var stdout bytes.Buffer
	err = newApp(&stdout).Run([]string{
		"image-trim",
		"--env-file", filepath.Join(dir, "absent.env"),
		"--input", blank,
		"--output", filepath.Join(dir, "out.webp"),
		"--log-level", "error",
	})
	require.Error(t, err)

	assert.Equal(t, exitEmptyContent, gotCode)
	assert.Equal(t, "No content found to trim in "+blank+"\n", stdout.String())
}

func TestApp_InvalidLogLevel(t *testing.T) {
	var gotCode int
	orig := cli.OsExiter
	cli.OsExiter = func(code int) { gotCode = code }
	t.Cleanup(func() { cli.OsExiter = orig })

	origErr := cli.ErrWriter
	cli.ErrWriter = &bytes.Buffer{}
	t.Cleanup(func() { cli.ErrWriter = origErr })

	dir := t.TempDir()
	err := newApp(&bytes.Buffer{}).Run([]string{
		"image-trim",
		"--env-file", filepath.Join(dir, "absent.env"),
		"--log-level", "loud",
	})
	require.Error(t, err)
	assert.Equal(t, exitFailure, gotCode)
}
