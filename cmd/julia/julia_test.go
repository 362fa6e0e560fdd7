package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := mainCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.png")

	_, err := execute(t, "--width", "24", "--height", "16", "--type", "mandelbrot",
		"--bounds", "-2,-1,1,1", "--bailout", "64", "--workers", "2", "-o", path)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 24 || cfg.Height != 16 {
		t.Errorf("saved image is %dx%d, want 24x16", cfg.Width, cfg.Height)
	}
}

func TestMissingSize(t *testing.T) {
	out, err := execute(t, "--height", "16", "-o", filepath.Join(t.TempDir(), "x.png"))
	if err == nil {
		t.Fatal("rendering without --width succeeded")
	}
	if !strings.Contains(out, "width") {
		t.Errorf("output %q does not mention the missing flag", out)
	}
}

func TestRejectsBuddhabrot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b.png")

	_, err := execute(t, "--width", "4", "--height", "4", "--type", "buddhabrot", "-o", path)
	if err == nil {
		t.Fatal("rendering a buddhabrot succeeded")
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Errorf("%s was written despite the error", path)
	}
}
