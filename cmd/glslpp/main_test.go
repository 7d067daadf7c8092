package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basic.glsl")
	src := "#type vertex\nuniform mat4 model;\nvoid main() {}\n#type fragment\nuniform sampler2D diffuse_texture;\nvoid main() {}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(&out, path, "#version 410 core", 1<<20, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"// --- vertex ---\n#version 410 core\n",
		"// --- fragment ---\n#version 410 core\n",
		"// --- uniforms (2) ---\n",
		"// model\n",
		"// diffuse_texture unit=0\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, filepath.Join(t.TempDir(), "missing.glsl"), "#version 330 core", 1<<20, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err == nil {
		t.Fatal("run succeeded on a missing file")
	}
	if out.Len() != 0 {
		t.Errorf("wrote output on failure: %q", out.String())
	}
}
