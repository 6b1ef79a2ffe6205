// Package renderer draws the lamp scene each frame.
package renderer

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/luxo/internal/engine/binding"
	"github.com/Faultbox/luxo/internal/engine/camera"
	"github.com/Faultbox/luxo/internal/engine/geometry"
	"github.com/Faultbox/luxo/internal/engine/gfx"
	"github.com/Faultbox/luxo/internal/engine/scene"
	"github.com/Faultbox/luxo/internal/engine/shader"
	"github.com/Faultbox/luxo/internal/engine/texture"
)

// Config holds renderer configuration.
type Config struct {
	Params geometry.Params

	// TexturePath is the image used for the ball. Empty or unreadable
	// paths fall back to plain white.
	TexturePath string

	// Shader source files. Empty paths use the embedded Phong shaders.
	VertexShader   string
	FragmentShader string

	Light      mgl32.Vec3
	ClearColor mgl32.Vec3
	Pose       scene.Pose
}

// DefaultConfig returns the standard scene setup.
func DefaultConfig() Config {
	return Config{
		Params:     geometry.DefaultParams(),
		Light:      mgl32.Vec3{5, 10, 5},
		ClearColor: mgl32.Vec3{0.1, 0.1, 0.1},
		Pose:       scene.DefaultPose(),
	}
}

// Stats describes the last rendered frame.
type Stats struct {
	Items int // draw items composed
	Drawn int // draw calls issued
}

// Renderer owns the GPU resources of the scene. Everything is created in
// New and stays unchanged while frames are drawn.
type Renderer struct {
	ctx gfx.Context
	log *zap.Logger
	cfg Config

	program  *shader.Program
	bindings map[geometry.Kind]*binding.Binding
	textures map[string]*texture.Texture
	composer scene.Composer

	stats Stats
}

// New sets up GL state, compiles the Phong program, uploads the meshes and
// loads the ball texture.
//
// A program that fails to build is logged and the renderer runs degraded:
// frames are still cleared but nothing is drawn.
func New(ctx gfx.Context, cfg Config, log *zap.Logger) *Renderer {
	r := &Renderer{
		ctx:      ctx,
		log:      log.Named("renderer"),
		cfg:      cfg,
		bindings: make(map[geometry.Kind]*binding.Binding),
		textures: make(map[string]*texture.Texture),
		composer: scene.NewComposer(cfg.Pose),
	}

	c := cfg.ClearColor
	ctx.SetClearColor(c.X(), c.Y(), c.Z(), 1)
	ctx.EnableDepthTest()

	prog, err := r.buildProgram()
	if err != nil {
		var cerr *shader.CompileError
		if errors.As(err, &cerr) {
			r.log.Error("shader program unavailable, drawing nothing",
				zap.String("stage", cerr.Stage),
				zap.String("log", cerr.Log))
		} else {
			r.log.Warn("shader program unavailable, drawing nothing", zap.Error(err))
		}
		return r
	}
	r.program = prog

	for _, kind := range geometry.Kinds {
		mesh, err := geometry.Generate(kind, cfg.Params)
		if err != nil {
			r.log.Error("mesh not generated",
				zap.Stringer("shape", kind),
				zap.Error(err))
			continue
		}
		r.bindings[kind] = binding.Bind(ctx, mesh, prog)
		r.log.Debug("mesh uploaded",
			zap.Stringer("shape", kind),
			zap.Int("vertices", mesh.VertexCount()),
			zap.Int("indices", len(mesh.Indices)))
	}

	r.textures[scene.TextureBall] = texture.Load(ctx, cfg.TexturePath, r.log)

	r.log.Info("renderer ready",
		zap.Int("meshes", len(r.bindings)),
		zap.Int("slices", cfg.Params.Slices),
		zap.Int("stacks", cfg.Params.Stacks))
	return r
}

func (r *Renderer) buildProgram() (*shader.Program, error) {
	vs, fs, err := shader.LoadSources(r.cfg.VertexShader, r.cfg.FragmentShader)
	if err != nil {
		return nil, err
	}
	return shader.CompileProgram(r.ctx, vs, fs)
}

// Ready reports whether the shader program is available.
func (r *Renderer) Ready() bool { return r.program != nil }

// Stats returns counters for the last frame.
func (r *Renderer) Stats() Stats { return r.stats }

// RenderFrame clears the framebuffer and draws the scene from the camera.
func (r *Renderer) RenderFrame(width, height int, cam camera.State) {
	r.stats = Stats{}
	r.ctx.Clear()
	r.ctx.Viewport(0, 0, int32(width), int32(height))

	if r.program == nil {
		return
	}

	view, err := camera.Compute(cam, width, height)
	if err != nil {
		r.log.Debug("frame skipped", zap.Error(err))
		return
	}

	p := r.program
	p.Use()
	p.SetMat4(shader.UniformProjection, view.Projection)
	p.SetMat4(shader.UniformView, view.View)
	p.SetVec3(shader.UniformViewPosition, view.Eye)
	p.SetVec3(shader.UniformLight, r.cfg.Light)

	frame := r.composer.Compose()
	r.stats.Items = len(frame.Items)
	for _, item := range frame.Items {
		b, ok := r.bindings[item.Shape]
		if !ok {
			continue
		}
		b.Activate()
		r.applyMaterial(item)
		b.Draw()
		b.Deactivate()
		r.stats.Drawn++
	}
}

// applyMaterial writes the full per-object uniform set, so nothing carries
// over from the previous draw.
func (r *Renderer) applyMaterial(item scene.DrawItem) {
	p, m := r.program, item.Material

	p.SetMat4(shader.UniformModel, item.Model)
	p.SetVec3(shader.UniformColor, m.Color)
	p.SetFloat(shader.UniformKa, m.Ambient)
	p.SetFloat(shader.UniformKd, m.Diffuse)
	p.SetFloat(shader.UniformKs, m.Specular)
	p.SetFloat(shader.UniformShininess, m.Shininess)

	tex, ok := r.textures[m.Texture]
	if m.Texture == "" || !ok {
		p.SetBool(shader.UniformUseTexture, false)
		return
	}
	p.SetBool(shader.UniformUseTexture, true)
	tex.Bind(r.ctx, 0)
	p.SetInt(shader.UniformTexture, 0)
}

// Close releases the shader program.
func (r *Renderer) Close() {
	if r.program != nil {
		r.program.Delete()
		r.program = nil
	}
}
