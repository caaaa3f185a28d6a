package app

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/gekko3d/holo"
	"github.com/gekko3d/holo/render/core"
	"github.com/gekko3d/holo/render/gpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// App presents recorded gizmo commands in a glfw window.
type App struct {
	Window   *glfw.Window
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
	Surface  *wgpu.Surface
	Config   *wgpu.SurfaceConfiguration

	GizmoPass *gpu.GizmoRenderPass
	TextPass  *gpu.TextRenderPass
	Atlas     *core.TextAtlas

	Camera      *core.CameraState
	Batch       core.Batch
	TessOpts    core.TessellateOptions
	LabelColor  [4]float32
	ClearColor  wgpu.Color
	Profiler    *Profiler
	Log         holo.Logger
	DebugMode   bool
	textVerts   []core.TextVertex
	screenLabel []core.ScreenLabel
}

func NewApp(window *glfw.Window, log holo.Logger) *App {
	if log == nil {
		log = holo.NewNopLogger()
	}
	return &App{
		Window:     window,
		Camera:     core.NewCameraState(),
		TessOpts:   core.DefaultTessellateOptions(),
		LabelColor: [4]float32{1, 1, 1, 1},
		ClearColor: wgpu.Color{R: 0.12, G: 0.12, B: 0.14, A: 1},
		Profiler:   NewProfiler(),
		Log:        log,
	}
}

func (a *App) Init() error {
	a.Instance = wgpu.CreateInstance(nil)
	a.Surface = a.Instance.CreateSurface(GetSurfaceDescriptor(a.Window))

	adapter, err := a.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: a.Surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("failed to request adapter: %w", err)
	}
	a.Adapter = adapter

	a.Device, err = adapter.RequestDevice(nil)
	if err != nil {
		return fmt.Errorf("failed to request device: %w", err)
	}
	a.Queue = a.Device.GetQueue()

	width, height := a.Window.GetFramebufferSize()
	caps := a.Surface.GetCapabilities(adapter)
	format := caps.Formats[0]

	a.Config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	a.Surface.Configure(adapter, a.Device, a.Config)

	a.GizmoPass, err = gpu.NewGizmoRenderPass(a.Device, format)
	if err != nil {
		return err
	}

	a.Atlas = core.NewTextAtlas()
	a.TextPass, err = gpu.NewTextRenderPass(a.Device, a.Queue, format, a.Atlas)
	if err != nil {
		return err
	}

	a.Log.Infof("renderer ready: %dx%d, format %v", width, height, format)
	return nil
}

func (a *App) Resize(w, h int) {
	if w > 0 && h > 0 {
		a.Config.Width = uint32(w)
		a.Config.Height = uint32(h)
		a.Surface.Configure(a.Adapter, a.Device, a.Config)
		a.Log.Debugf("resized to %dx%d", w, h)
	}
}

func (a *App) size() (int, int) {
	return int(a.Config.Width), int(a.Config.Height)
}

// Update turns this frame's commands into GPU buffers.
func (a *App) Update(cmds []holo.Command) {
	w, h := a.size()
	if w == 0 || h == 0 {
		return
	}

	a.Profiler.BeginScope("tessellate")
	a.Batch.Reset()
	core.Tessellate(&a.Batch, cmds, a.TessOpts)
	a.screenLabel = append(a.screenLabel[:0], core.PlaceLabels(a.Camera, a.Atlas, a.Batch.Labels, w, h, a.LabelColor)...)
	a.Profiler.EndScope("tessellate")

	a.Profiler.SetCount("commands", len(cmds))
	a.Profiler.SetCount("lines", len(a.Batch.Lines)/2)
	a.Profiler.SetCount("triangles", len(a.Batch.Triangles)/3)
	a.Profiler.SetCount("labels", len(a.screenLabel))

	if a.DebugMode {
		stats := a.Profiler.String()
		sw, _ := a.Atlas.Measure(stats, 1)
		a.screenLabel = append(a.screenLabel, core.ScreenLabel{
			Text:  stats,
			X:     10 + a.Atlas.Padding + sw/2,
			Y:     10 + a.Atlas.Padding,
			Scale: 1,
			Color: [4]float32{1, 1, 0, 1},
		})
	}

	a.Profiler.BeginScope("upload")
	a.GizmoPass.UpdateCamera(a.Queue, a.Camera.ViewProjection(float32(w)/float32(h)))
	if err := a.GizmoPass.Update(a.Queue, &a.Batch); err != nil {
		a.Log.Errorf("gizmo upload failed: %v", err)
	}
	a.textVerts = a.Atlas.BuildQuads(a.screenLabel, w, h)
	if err := a.TextPass.Update(a.Queue, a.textVerts); err != nil {
		a.Log.Errorf("label upload failed: %v", err)
	}
	a.Profiler.EndScope("upload")
}

func (a *App) Render() {
	a.Profiler.BeginScope("render")
	defer a.Profiler.EndScope("render")

	nextTexture, err := a.Surface.GetCurrentTexture()
	if err != nil {
		a.Log.Errorf("GetCurrentTexture failed: %v", err)
		return
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		a.Log.Errorf("CreateView failed: %v", err)
		return
	}
	defer view.Release()

	encoder, err := a.Device.CreateCommandEncoder(nil)
	if err != nil {
		a.Log.Errorf("CreateCommandEncoder failed: %v", err)
		return
	}

	rPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: a.ClearColor,
		}},
	})
	a.GizmoPass.Draw(rPass)
	a.TextPass.Draw(rPass)

	if err := rPass.End(); err != nil {
		a.Log.Errorf("render pass End failed: %v", err)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		a.Log.Errorf("encoder Finish failed: %v", err)
		return
	}
	a.Queue.Submit(cmd)
	a.Surface.Present()
}

// Release frees GPU resources in reverse creation order.
func (a *App) Release() {
	if a.TextPass != nil {
		a.TextPass.Release()
	}
	if a.GizmoPass != nil {
		a.GizmoPass.Release()
	}
	if a.Device != nil {
		a.Device.Release()
	}
	if a.Adapter != nil {
		a.Adapter.Release()
	}
	if a.Surface != nil {
		a.Surface.Release()
	}
	if a.Instance != nil {
		a.Instance.Release()
	}
}

func GetSurfaceDescriptor(w *glfw.Window) *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w)
}
