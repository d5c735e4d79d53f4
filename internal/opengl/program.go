package opengl

import (
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"tessellation-demo/internal/shader"
)

var stageTypes = [shader.NumStages]uint32{
	shader.Vertex:      gl.VERTEX_SHADER,
	shader.TessControl: gl.TESS_CONTROL_SHADER,
	shader.TessEval:    gl.TESS_EVALUATION_SHADER,
	shader.Fragment:    gl.FRAGMENT_SHADER,
}

var stageBits = [shader.NumStages]uint32{
	shader.Vertex:      gl.VERTEX_SHADER_BIT,
	shader.TessControl: gl.TESS_CONTROL_SHADER_BIT,
	shader.TessEval:    gl.TESS_EVALUATION_SHADER_BIT,
	shader.Fragment:    gl.FRAGMENT_SHADER_BIT,
}

// compileStage builds src into a separable single-stage program. On failure
// nothing is left allocated.
func compileStage(src shader.Source) (uint32, error) {
	csrc, free := gl.Strs(src.CString())
	prog := gl.CreateShaderProgramv(stageTypes[src.Stage], 1, csrc)
	free()

	if prog == 0 {
		return 0, shader.BuildError(src.Stage, src.Path, "", gl.GetError())
	}

	// glCreateShaderProgramv folds compile and link status into the
	// program's link status and info log.
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programInfoLog(prog)
		code := gl.GetError()
		gl.DeleteProgram(prog)
		return 0, shader.BuildError(src.Stage, src.Path, log, code)
	}
	return prog, nil
}

func programInfoLog(prog uint32) string {
	var logLen int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
	return log
}
