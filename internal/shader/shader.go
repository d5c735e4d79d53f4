// Package shader loads the four stage sources of the tessellation pipeline
// and describes the errors produced when a stage fails to build.
package shader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"tessellation-demo/internal/gpu"
)

// Stage is one programmable stage of the pipeline.
type Stage int

const (
	Vertex Stage = iota
	TessControl
	TessEval
	Fragment

	NumStages = 4
)

// Stages lists every stage in pipeline order.
var Stages = [NumStages]Stage{Vertex, TessControl, TessEval, Fragment}

var stageNames = [NumStages]string{
	Vertex:      "vertex",
	TessControl: "tessellation control",
	TessEval:    "tessellation evaluation",
	Fragment:    "fragment",
}

func (s Stage) String() string {
	if s >= 0 && s < NumStages {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Profile is the #version line every stage must declare.
const Profile = "#version 410 core"

// Source is the text of one stage and where it came from.
type Source struct {
	Stage Stage
	Path  string
	Text  string
}

// CString returns the text NUL-terminated for the GL string helpers.
func (s Source) CString() string {
	if strings.HasSuffix(s.Text, "\x00") {
		return s.Text
	}
	return s.Text + "\x00"
}

// Paths names the file of each stage.
type Paths [NumStages]string

// ErrProfile means a stage does not target the required profile.
var ErrProfile = errors.New("shader: missing " + Profile + " directive")

// Load reads a single stage from path.
func Load(stage Stage, path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("%s shader: %w", stage, err)
	}
	text := string(data)
	if !hasProfile(text) {
		return Source{}, fmt.Errorf("%s shader %s: %w", stage, path, ErrProfile)
	}
	return Source{Stage: stage, Path: path, Text: text}, nil
}

// LoadAll reads every stage, stopping at the first failure.
func LoadAll(paths Paths) ([NumStages]Source, error) {
	var out [NumStages]Source
	for _, st := range Stages {
		src, err := Load(st, paths[st])
		if err != nil {
			return [NumStages]Source{}, err
		}
		out[st] = src
	}
	return out, nil
}

// hasProfile reports whether the first non-blank, non-comment line is the
// version directive.
func hasProfile(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		return strings.Join(strings.Fields(line), " ") == Profile
	}
	return false
}

// CompileError carries the compiler's diagnostic text for a stage.
type CompileError struct {
	Stage Stage
	Path  string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader %s: %s", e.Stage, e.Path, strings.TrimRight(e.Log, "\x00\n "))
}

// BuildError returns a CompileError when log holds text and a
// gpu.CodeError otherwise.
func BuildError(stage Stage, path, log string, code uint32) error {
	if strings.TrimRight(log, "\x00\n ") != "" {
		return &CompileError{Stage: stage, Path: path, Log: log}
	}
	return fmt.Errorf("failed to compile %s shader %s: %w", stage, path, gpu.CodeError(code))
}
