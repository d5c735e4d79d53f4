package opengl

import (
	"fmt"
	"log/slog"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"tessellation-demo/core"
	"tessellation-demo/internal/shader"
	"tessellation-demo/scene"
)

// Uniform block names and binding points. Binding points are shared by the
// whole context, so each stage's block gets its own.
const (
	HullBlock   = "HullParams"
	DomainBlock = "DomainParams"
	PixelBlock  = "PixelParams"

	HullBinding   = 0
	DomainBinding = 1
	PixelBinding  = 2
)

// patchVertices is the control point count of every patch.
const patchVertices = 4

type RendererConfig struct {
	Shaders    shader.Paths
	Patch      scene.Patch
	ClearColor core.Color
}

// Renderer is the OpenGL rendering backend. It owns every GPU object the
// demo creates.
type Renderer struct {
	dev *Device
	log *slog.Logger

	pipeline *Pipeline
	vertices *VertexBuffer
	hull     *UniformBlock
	domain   *UniformBlock
	pixel    *UniformBlock
	target   *RenderTarget

	patch      scene.Patch
	clearColor core.Color
	viewport   core.Viewport
}

// NewRenderer builds the pipeline, the parameter blocks and the vertex
// buffer. The render target is created by the first Resize.
func NewRenderer(dev *Device, cfg RendererConfig, log *slog.Logger) (*Renderer, error) {
	r := &Renderer{
		dev:        dev,
		log:        log,
		patch:      cfg.Patch,
		clearColor: cfg.ClearColor,
	}
	ok := false
	defer func() {
		if !ok {
			r.Destroy()
		}
	}()

	var err error
	if r.pipeline, err = NewPipeline(cfg.Shaders, log); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	if err = r.initParamBlocks(); err != nil {
		log.Error("cannot create parameter block", "err", err)
		return nil, fmt.Errorf("parameter blocks: %w", err)
	}
	if r.vertices, err = NewVertexBuffer(r.pipeline, &r.patch); err != nil {
		log.Error("cannot create vertex buffer", "err", err)
		return nil, fmt.Errorf("vertex buffer: %w", err)
	}

	ok = true
	log.Info("pipeline ready", "stages", shader.NumStages, "controlPoints", r.vertices.Count())
	return r, nil
}

func (r *Renderer) initParamBlocks() error {
	var err error
	if r.hull, err = newBlockFor[scene.HullParams](
		r.pipeline.Stage(shader.TessControl), HullBlock, HullBinding); err != nil {
		return err
	}
	if r.domain, err = newBlockFor[scene.DomainParams](
		r.pipeline.Stage(shader.TessEval), DomainBlock, DomainBinding); err != nil {
		return err
	}
	if r.pixel, err = newBlockFor[scene.PixelParams](
		r.pipeline.Stage(shader.Fragment), PixelBlock, PixelBinding); err != nil {
		return err
	}
	return nil
}

// Resize replaces the render target with one of the new size and sets the
// viewport over it. The old target is released first.
func (r *Renderer) Resize(width, height int) error {
	if r.target != nil {
		r.target.Destroy()
		r.target = nil
	}

	target, err := NewRenderTarget(width, height)
	if err != nil {
		return fmt.Errorf("render target: %w", err)
	}
	r.target = target

	r.viewport = core.NewViewport(int(target.Width), int(target.Height))
	r.target.Bind(r.viewport)
	return nil
}

// Begin clears the target and binds the patch.
func (r *Renderer) Begin() {
	if r.target == nil {
		return
	}
	r.target.Bind(r.viewport)
	r.target.Clear(r.clearColor)

	r.pipeline.Bind()
	gl.PatchParameteri(gl.PATCH_VERTICES, patchVertices)
}

// Upload overwrites all three parameter blocks.
func (r *Renderer) Upload(f *scene.Frame) {
	writeBlock(r.domain, &f.Domain)
	writeBlock(r.hull, &f.Hull)
	writeBlock(r.pixel, &f.Pixel)
}

// Draw issues the single non-indexed patch draw.
func (r *Renderer) Draw() {
	if r.target == nil {
		return
	}
	gl.DrawArrays(gl.PATCHES, 0, r.vertices.Count())
}

// Present copies the target to the window and swaps without waiting for
// vertical sync.
func (r *Renderer) Present() {
	if r.target == nil {
		return
	}
	r.target.Blit()
	r.dev.Window.SwapBuffers()
}

// Destroy releases everything in reverse creation order.
func (r *Renderer) Destroy() {
	if r.target != nil {
		r.target.Destroy()
		r.target = nil
	}
	if r.vertices != nil {
		r.vertices.Destroy()
		r.vertices = nil
	}
	for _, b := range []**UniformBlock{&r.pixel, &r.domain, &r.hull} {
		if *b != nil {
			(*b).Destroy()
			*b = nil
		}
	}
	if r.pipeline != nil {
		r.pipeline.Destroy()
		r.pipeline = nil
	}
}
