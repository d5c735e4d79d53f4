package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"tessellation-demo/scene"
)

// VertexBuffer holds the patch control points. It is written once.
type VertexBuffer struct {
	id     uint32
	count  int32
	stride int32
}

// NewVertexBuffer uploads patch and points the pipeline's position
// attribute at it.
func NewVertexBuffer(p *Pipeline, patch *scene.Patch) (*VertexBuffer, error) {
	vb := &VertexBuffer{count: int32(patch.Len()), stride: scene.ControlPointStride}

	gl.BindVertexArray(p.vao)
	gl.GenBuffers(1, &vb.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferData(gl.ARRAY_BUFFER, patch.SizeBytes(), gl.Ptr(&patch[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(p.position, 2, gl.FLOAT, false, vb.stride, 0)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := checkError("create vertex buffer"); err != nil {
		vb.Destroy()
		return nil, err
	}
	return vb, nil
}

func (vb *VertexBuffer) Count() int32 { return vb.count }

func (vb *VertexBuffer) Destroy() {
	if vb.id != 0 {
		gl.DeleteBuffers(1, &vb.id)
		vb.id = 0
	}
}

// UniformBlock is a fixed-size std140 parameter block read by one stage.
type UniformBlock struct {
	Name    string
	Binding uint32

	id   uint32
	size int
}

// NewUniformBlock allocates size bytes for the block called name in prog
// and attaches both to binding.
func NewUniformBlock(prog uint32, name string, binding uint32, size int) (*UniformBlock, error) {
	index := gl.GetUniformBlockIndex(prog, gl.Str(name+"\x00"))
	if index == gl.INVALID_INDEX {
		return nil, fmt.Errorf("uniform block %s not found", name)
	}

	var dataSize int32
	gl.GetActiveUniformBlockiv(prog, index, gl.UNIFORM_BLOCK_DATA_SIZE, &dataSize)
	if int(dataSize) != size {
		return nil, fmt.Errorf("uniform block %s is %d bytes, expected %d", name, dataSize, size)
	}
	gl.UniformBlockBinding(prog, index, binding)

	u := &UniformBlock{Name: name, Binding: binding, size: size}
	gl.GenBuffers(1, &u.id)
	gl.BindBuffer(gl.UNIFORM_BUFFER, u.id)
	gl.BufferData(gl.UNIFORM_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, u.id)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	if err := checkError("create uniform block " + name); err != nil {
		u.Destroy()
		return nil, err
	}
	return u, nil
}

// write replaces the whole block with data, which must be u.size bytes.
func (u *UniformBlock) write(data unsafe.Pointer) {
	gl.BindBuffer(gl.UNIFORM_BUFFER, u.id)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, u.size, data)
}

func (u *UniformBlock) Destroy() {
	if u.id != 0 {
		gl.DeleteBuffers(1, &u.id)
		u.id = 0
	}
}

// newBlockFor sizes a block from the Go type that mirrors it.
func newBlockFor[T any](prog uint32, name string, binding uint32) (*UniformBlock, error) {
	var v T
	return NewUniformBlock(prog, name, binding, int(unsafe.Sizeof(v)))
}

// writeBlock uploads v, which must be the type the block was created for.
func writeBlock[T any](u *UniformBlock, v *T) {
	u.write(unsafe.Pointer(v))
}
