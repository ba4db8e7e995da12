// Package bootstrap builds the cube scene and drives it frame by frame.
//
// All scene state lives in a SceneContext owned by one loop goroutine (the
// window or headless runner). Work that finishes elsewhere, such as shader
// loading, is handed back to the loop with Post and applied by the next
// Frame, so the renderer never observes a half-built mesh.
package bootstrap

import (
	"context"
	"fmt"
	"sync"

	"cubeview/quarkgl"

	"go.uber.org/zap"
)

// Container is the area the scene is drawn into.
type Container interface {
	Size() (w, h int)
}

// Extent is a fixed-size Container.
type Extent struct {
	Width  int
	Height int
}

func (e Extent) Size() (w, h int) { return e.Width, e.Height }

// Cube dimensions.
const (
	CubeWidth  = 2
	CubeHeight = 1
	CubeDepth  = 1
)

// Options configure Initialize.
type Options struct {
	Log *zap.Logger

	// Material builds the cube material. Required.
	Material MaterialSource

	Background quarkgl.Color
	Helpers    bool

	FOVYDeg        quarkgl.Scalar
	Near           quarkgl.Scalar
	Far            quarkgl.Scalar
	CameraPosition quarkgl.Vec3

	GammaOutput             bool
	GammaFactor             quarkgl.Scalar
	PhysicallyCorrectLights bool

	// OnUpdate runs once per frame before drawing. Nil means no per-frame
	// mutation.
	OnUpdate func(*SceneContext)
}

// DefaultOptions returns the stock scene: sky blue background, light
// helpers, a 35° camera at (2, 1, 5) and gamma 2.2 output.
func DefaultOptions(src MaterialSource) Options {
	return Options{
		Log:                     zap.NewNop(),
		Material:                src,
		Background:              quarkgl.Hex(0x87ceeb),
		Helpers:                 true,
		FOVYDeg:                 35,
		Near:                    0.1,
		Far:                     1000,
		CameraPosition:          quarkgl.V3(2, 1, 5),
		GammaOutput:             true,
		GammaFactor:             2.2,
		PhysicallyCorrectLights: true,
	}
}

// SceneContext owns every scene singleton. Fields are read and written only
// from the loop goroutine.
type SceneContext struct {
	Scene       *quarkgl.Scene
	Camera      *quarkgl.PerspectiveCamera
	Renderer    *quarkgl.Renderer
	Controls    *quarkgl.OrbitController
	Surface     *quarkgl.RGBATarget
	Directional *quarkgl.DirectionalLight
	Hemisphere  *quarkgl.HemisphereLight

	// Cube is nil until its material is ready.
	Cube    *quarkgl.Mesh
	Pending *PendingMaterial

	OnUpdate func(*SceneContext)

	ctx      context.Context
	log      *zap.Logger
	material MaterialSource
	geometry *quarkgl.Geometry
	status   string

	mu    sync.Mutex
	queue []func()
	// loads tracks InsertCube only; reloads has its own group so a watcher
	// never calls Add while WaitLoads is blocked.
	loads   sync.WaitGroup
	reloads sync.WaitGroup
}

// Initialize builds the scene for container and requests the cube. The cube
// appears on a later Frame once its material resolves. ctx bounds the
// material loads; canceling it aborts them.
func Initialize(ctx context.Context, container Container, opts Options) (*SceneContext, error) {
	if container == nil {
		return nil, &ConfigurationError{Reason: "no container"}
	}
	w, h := container.Size()
	if w <= 0 || h <= 0 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("container has zero extent (%dx%d)", w, h)}
	}
	if opts.Material == nil {
		return nil, &ConfigurationError{Reason: "no material source"}
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	sc := &SceneContext{
		OnUpdate: opts.OnUpdate,
		ctx:      ctx,
		log:      log,
		material: opts.Material,
	}

	sc.Scene = quarkgl.NewScene()
	sc.Scene.Background = opts.Background

	sc.createLights(opts.Helpers)
	sc.createCamera(opts, w, h)
	sc.InsertCube()
	sc.createRenderer(opts, w, h)
	sc.Controls = quarkgl.NewOrbitController(sc.Camera)

	log.Info("scene initialized",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("children", sc.Scene.NumChildren()))
	return sc, nil
}

func (sc *SceneContext) createLights(helpers bool) {
	sc.Directional = quarkgl.NewDirectionalLight(quarkgl.Hex(0xffffff), 5)
	sc.Directional.Position = quarkgl.V3(5, 5, 10)

	sc.Hemisphere = quarkgl.NewHemisphereLight(quarkgl.Hex(0xddeeff), quarkgl.Hex(0x202020), 3)

	sc.Scene.Add(sc.Directional)
	if helpers {
		sc.Scene.Add(quarkgl.NewDirectionalLightHelper(sc.Directional, 5))
	}
	sc.Scene.Add(sc.Hemisphere)
	if helpers {
		sc.Scene.Add(quarkgl.NewHemisphereLightHelper(sc.Hemisphere, 5))
	}
}

func (sc *SceneContext) createCamera(opts Options, w, h int) {
	sc.Camera = quarkgl.NewPerspectiveCamera(opts.FOVYDeg, aspect(w, h), opts.Near, opts.Far)
	sc.Camera.Position = opts.CameraPosition
	sc.Camera.LookAt(quarkgl.V3(0, 0, 0))
}

func (sc *SceneContext) createRenderer(opts Options, w, h int) {
	sc.Renderer = quarkgl.NewRenderer()
	sc.Renderer.GammaOutput = opts.GammaOutput
	sc.Renderer.GammaFactor = opts.GammaFactor
	sc.Renderer.PhysicallyCorrectLights = opts.PhysicallyCorrectLights
	sc.Surface = quarkgl.NewRGBATarget(w, h)
}

func aspect(w, h int) quarkgl.Scalar {
	return quarkgl.Scalar(w) / quarkgl.Scalar(h)
}

// InsertCube builds the cube geometry and starts building its material in
// the background. It returns immediately; the mesh is added by the first
// Frame after the material is ready, and never if it fails.
func (sc *SceneContext) InsertCube() *PendingMaterial {
	sc.geometry = quarkgl.NewBoxGeometry(CubeWidth, CubeHeight, CubeDepth)

	p := sc.newPending()
	sc.Pending = p
	sc.status = "loading material"

	sc.loads.Add(1)
	go func() {
		defer sc.loads.Done()
		mat, err := sc.material.Material(sc.ctx)
		if err != nil {
			p.fail(err)
			sc.log.Error("cube material failed; cube will not be shown",
				zap.String("vertex_url", p.VertexURL),
				zap.String("fragment_url", p.FragmentURL),
				zap.Error(err))
			sc.Post(func() { sc.status = "error: " + err.Error() })
			return
		}
		p.resolve(mat)
		sc.Post(func() { sc.commitMaterial(mat) })
	}()
	return p
}

func (sc *SceneContext) newPending() *PendingMaterial {
	if s, ok := sc.material.(ShaderSource); ok {
		return newPendingMaterial(s.VertexURL, s.FragmentURL)
	}
	return newPendingMaterial("", "")
}

// commitMaterial adds the cube on first use and swaps its material after.
// sc.Pending must already be Ready.
func (sc *SceneContext) commitMaterial(mat quarkgl.Material) {
	sc.status = "ready"
	if sc.Cube != nil {
		sc.Cube.Material = mat
		sc.log.Info("cube material replaced", zap.Uint32("mesh", uint32(sc.Cube.ID())))
		return
	}
	sc.Cube = quarkgl.NewMesh(sc.geometry, mat)
	sc.Scene.Add(sc.Cube)
	sc.log.Info("cube inserted",
		zap.Uint32("mesh", uint32(sc.Cube.ID())),
		zap.Int("children", sc.Scene.NumChildren()))
}

// Post schedules fn to run on the loop goroutine at the start of the next
// Frame. It is safe to call from any goroutine.
func (sc *SceneContext) Post(fn func()) {
	sc.mu.Lock()
	sc.queue = append(sc.queue, fn)
	sc.mu.Unlock()
}

// RunPending runs every posted task in order. Tasks posted while running are
// left for the next call.
func (sc *SceneContext) RunPending() int {
	sc.mu.Lock()
	q := sc.queue
	sc.queue = nil
	sc.mu.Unlock()
	for _, fn := range q {
		fn()
	}
	return len(q)
}

// WaitLoads blocks until the material build started by InsertCube has
// finished. Its result still needs a Frame or RunPending to be applied.
// Reloads are not covered.
func (sc *SceneContext) WaitLoads() { sc.loads.Wait() }

// Status describes the cube material for display.
func (sc *SceneContext) Status() string { return sc.status }

// Frame is the per-frame callback: apply posted work, run the update hook,
// then draw the scene from the camera into the surface.
func (sc *SceneContext) Frame() {
	sc.RunPending()
	if sc.OnUpdate != nil {
		sc.OnUpdate(sc)
	}
	sc.Renderer.Render(sc.Surface, sc.Scene, sc.Camera)
}

// Resize matches the camera aspect and the surface to a new container size.
// Calling it again with the same size changes nothing; zero sizes (a
// minimized window) are ignored.
func (sc *SceneContext) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	sc.Camera.Aspect = aspect(w, h)
	sc.Camera.UpdateProjectionMatrix()
	sc.Surface.Resize(w, h)
}
