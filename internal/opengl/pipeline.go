package opengl

import (
	"fmt"
	"log/slog"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"tessellation-demo/internal/shader"
)

// PositionAttribute is the single vertex input every patch vertex carries.
const PositionAttribute = "position"

// Pipeline is the four stage programs joined on one program pipeline, plus
// the vertex array describing the patch vertices.
type Pipeline struct {
	pipeline uint32
	stages   [shader.NumStages]uint32
	vao      uint32

	// location of PositionAttribute in the vertex stage
	position uint32
}

// NewPipeline compiles every stage from paths and binds each one to the
// pipeline as soon as it exists. If any stage fails, the stages built so
// far are released and the error is returned.
func NewPipeline(paths shader.Paths, log *slog.Logger) (*Pipeline, error) {
	srcs, err := shader.LoadAll(paths)
	if err != nil {
		log.Error("failed to read shader source", "err", err)
		return nil, err
	}

	p := &Pipeline{}
	ok := false
	defer func() {
		if !ok {
			p.Destroy()
		}
	}()

	gl.GenProgramPipelines(1, &p.pipeline)
	gl.BindProgramPipeline(p.pipeline)

	for _, st := range shader.Stages {
		prog, err := compileStage(srcs[st])
		if err != nil {
			log.Error("failed to build shader", "stage", st, "path", srcs[st].Path, "err", err)
			return nil, err
		}
		p.stages[st] = prog
		gl.UseProgramStages(p.pipeline, stageBits[st], prog)
		log.Debug("shader stage bound", "stage", st, "path", srcs[st].Path)
	}

	if err := p.initInputLayout(); err != nil {
		log.Error("failed to create input layout", "err", err)
		return nil, err
	}

	ok = true
	return p, nil
}

// initInputLayout creates the vertex array with the one attribute the
// vertex stage declares. The location comes from the compiled stage.
func (p *Pipeline) initInputLayout() error {
	loc := gl.GetAttribLocation(p.stages[shader.Vertex], gl.Str(PositionAttribute+"\x00"))
	if loc < 0 {
		return fmt.Errorf("vertex stage has no %q input", PositionAttribute)
	}
	p.position = uint32(loc)

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)
	gl.EnableVertexAttribArray(p.position)
	gl.BindVertexArray(0)
	return checkError("create input layout")
}

// Stage returns the program of a single stage.
func (p *Pipeline) Stage(st shader.Stage) uint32 {
	return p.stages[st]
}

// Bind makes the pipeline and its vertex array current.
func (p *Pipeline) Bind() {
	gl.UseProgram(0)
	gl.BindProgramPipeline(p.pipeline)
	gl.BindVertexArray(p.vao)
}

// Destroy releases every object that was created.
func (p *Pipeline) Destroy() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	for i := len(p.stages) - 1; i >= 0; i-- {
		if p.stages[i] != 0 {
			gl.DeleteProgram(p.stages[i])
			p.stages[i] = 0
		}
	}
	if p.pipeline != 0 {
		gl.DeleteProgramPipelines(1, &p.pipeline)
		p.pipeline = 0
	}
}
