package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"tessellation-demo/core"
)

// RenderTarget is the off-screen colour buffer frames are drawn into. It is
// sized to the window and copied to the window's back buffer on present.
type RenderTarget struct {
	FBO    uint32 // framebuffer object
	Color  uint32 // RGBA8 colour renderbuffer
	Width  int32
	Height int32
}

// NewRenderTarget allocates a width x height target. Zero dimensions are
// raised to 1 because GL rejects empty storage.
func NewRenderTarget(width, height int) (*RenderTarget, error) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	rt := &RenderTarget{Width: int32(width), Height: int32(height)}

	gl.GenRenderbuffers(1, &rt.Color)
	gl.BindRenderbuffer(gl.RENDERBUFFER, rt.Color)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, rt.Width, rt.Height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	gl.GenFramebuffers(1, &rt.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.FBO)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, rt.Color)
	gl.DrawBuffer(gl.COLOR_ATTACHMENT0)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		rt.Destroy()
		return nil, fmt.Errorf("%w: status %#x", ErrIncompleteTarget, status)
	}
	if err := checkError("create render target"); err != nil {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		rt.Destroy()
		return nil, err
	}
	return rt, nil
}

// Bind makes the target the draw destination and sets the viewport over it.
func (rt *RenderTarget) Bind(vp core.Viewport) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.FBO)
	gl.Viewport(int32(vp.X), int32(vp.Y), int32(vp.Width), int32(vp.Height))
	gl.DepthRangef(vp.MinDepth, vp.MaxDepth)
}

func (rt *RenderTarget) Clear(c core.Color) {
	v := c.Vec4()
	gl.ClearBufferfv(gl.COLOR, 0, &v[0])
}

// Blit copies the target into the default framebuffer.
func (rt *RenderTarget) Blit() {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, rt.FBO)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(0, 0, rt.Width, rt.Height, 0, 0, rt.Width, rt.Height, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.FBO)
}

func (rt *RenderTarget) Destroy() {
	if rt.FBO != 0 {
		gl.DeleteFramebuffers(1, &rt.FBO)
		rt.FBO = 0
	}
	if rt.Color != 0 {
		gl.DeleteRenderbuffers(1, &rt.Color)
		rt.Color = 0
	}
}
