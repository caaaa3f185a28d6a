package main

import (
	"flag"
	"runtime"

	"github.com/gekko3d/holo"
	"github.com/gekko3d/holo/render/app"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "holo.yaml", "Path to the drawer config file")
	debug := flag.Bool("debug", false, "Enable debug logging and the stats overlay")
	width := flag.Int("width", 1280, "Window width")
	height := flag.Int("height", 720, "Window height")
	flag.Parse()

	logger := holo.NewDefaultLogger("holo", *debug)

	cfg, err := holo.LoadConfig(*configPath)
	if err != nil {
		logger.Warnf("using default config: %v", err)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(*width, *height, "Holo Gizmos", nil, nil)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	application := app.NewApp(window, logger)
	application.DebugMode = *debug
	if err := application.Init(); err != nil {
		panic(err)
	}
	defer application.Release()
	application.Camera.Target = mgl32.Vec3{4, 0, 2}
	application.Camera.Distance = 22

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		application.Resize(width, height)
	})

	// Left drag orbits, scroll zooms.
	var dragging bool
	var lastX, lastY float64
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft {
			dragging = action == glfw.Press
			lastX, lastY = w.GetCursorPos()
		}
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !dragging {
			return
		}
		cam := application.Camera
		cam.Yaw -= float32(xpos-lastX) * 0.01
		cam.Pitch = mgl32.Clamp(cam.Pitch+float32(ypos-lastY)*0.01, -1.5, 1.5)
		lastX, lastY = xpos, ypos
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		cam := application.Camera
		cam.Distance = mgl32.Clamp(cam.Distance*(1-float32(yoff)*0.1), 2, 200)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
		if key == glfw.KeyF1 && action == glfw.Press {
			application.DebugMode = !application.DebugMode
			logger.SetDebug(application.DebugMode)
		}
	})

	recorder := holo.NewRecorder()
	assets := holo.NewAssetServer()
	drawer := holo.NewDrawer(recorder)
	drawer.Assets = assets
	drawer.Log = logger
	drawer.Config = cfg

	scene := newDemoScene(assets)
	var lastErr string

	for !window.ShouldClose() {
		glfw.PollEvents()

		application.Profiler.BeginScope("record")
		recorder.Reset()
		if err := scene.draw(drawer, float32(glfw.GetTime())); err != nil && err.Error() != lastErr {
			lastErr = err.Error()
			logger.Errorf("scene: %v", err)
		}
		application.Profiler.EndScope("record")

		application.Update(recorder.Commands())
		application.Render()
	}
}
