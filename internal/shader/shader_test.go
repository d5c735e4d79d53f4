package shader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tessellation-demo/internal/gpu"
)

func writeStage(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStageString(t *testing.T) {
	if TessControl.String() != "tessellation control" {
		t.Errorf("unexpected name %q", TessControl)
	}
	if Stage(7).String() != "stage(7)" {
		t.Errorf("unexpected name %q", Stage(7))
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	var paths Paths
	for _, st := range Stages {
		paths[st] = writeStage(t, dir, st.String()+".glsl",
			"// "+st.String()+"\n"+Profile+"\nvoid main() {}\n")
	}

	srcs, err := LoadAll(paths)
	if err != nil {
		t.Fatal(err)
	}
	for _, st := range Stages {
		if srcs[st].Stage != st || srcs[st].Path != paths[st] {
			t.Errorf("stage %s loaded as %+v", st, srcs[st])
		}
		if !strings.HasSuffix(srcs[st].CString(), "\x00") {
			t.Errorf("stage %s: CString not NUL-terminated", st)
		}
	}
}

func TestLoadAllStopsAtMissingStage(t *testing.T) {
	dir := t.TempDir()
	var paths Paths
	for _, st := range Stages {
		paths[st] = filepath.Join(dir, st.String()+".glsl")
		if st != TessEval {
			writeStage(t, dir, st.String()+".glsl", Profile+"\n")
		}
	}

	_, err := LoadAll(paths)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	if !strings.Contains(err.Error(), "tessellation evaluation") {
		t.Errorf("expected the failing stage in %q", err)
	}
}

func TestLoadRejectsWrongProfile(t *testing.T) {
	dir := t.TempDir()
	path := writeStage(t, dir, "old.glsl", "#version 330 core\nvoid main() {}\n")

	if _, err := Load(Fragment, path); !errors.Is(err, ErrProfile) {
		t.Errorf("expected ErrProfile, got %v", err)
	}
}

func TestLoadAcceptsExtraWhitespaceInProfile(t *testing.T) {
	dir := t.TempDir()
	path := writeStage(t, dir, "ws.glsl", "\n\n  #version   410   core\n")

	if _, err := Load(Vertex, path); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBuildError(t *testing.T) {
	err := BuildError(TessEval, "shaders/tess_eval.glsl", "0:12(3): error: syntax error\x00", 0)
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CompileError, got %T", err)
	}
	if !strings.HasSuffix(err.Error(), "syntax error") {
		t.Errorf("diagnostic not carried: %q", err)
	}

	err = BuildError(Fragment, "shaders/fragment.glsl", "", 0x502)
	var code gpu.CodeError
	if !errors.As(err, &code) || code != 0x502 {
		t.Fatalf("expected CodeError 0x502, got %v", err)
	}
	if !strings.Contains(err.Error(), "0x00000502") {
		t.Errorf("expected padded hex code in %q", err)
	}
}

func TestShippedStagesDeclareTheirBlocks(t *testing.T) {
	dir := filepath.Join("..", "..", "shaders")
	paths := Paths{
		Vertex:      filepath.Join(dir, "vertex.glsl"),
		TessControl: filepath.Join(dir, "tess_control.glsl"),
		TessEval:    filepath.Join(dir, "tess_eval.glsl"),
		Fragment:    filepath.Join(dir, "fragment.glsl"),
	}
	srcs, err := LoadAll(paths)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		stage Stage
		want  string
	}{
		{Vertex, "in vec2 position"},
		{TessControl, "uniform HullParams"},
		{TessControl, "layout(vertices = 4) out"},
		{TessEval, "uniform DomainParams"},
		{TessEval, "isolines"},
		{Fragment, "uniform PixelParams"},
	}
	for _, tt := range tests {
		if !strings.Contains(srcs[tt.stage].Text, tt.want) {
			t.Errorf("%s stage: expected %q", tt.stage, tt.want)
		}
	}
}
