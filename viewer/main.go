package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/df07/go-whitted-raytracer/pkg/controls"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var keyBindings = map[glfw.Key]controls.Command{
	glfw.KeyW:     controls.ObjectUp,
	glfw.KeyS:     controls.ObjectDown,
	glfw.KeyA:     controls.ObjectLeft,
	glfw.KeyD:     controls.ObjectRight,
	glfw.KeyUp:    controls.CameraUp,
	glfw.KeyDown:  controls.CameraDown,
	glfw.KeyLeft:  controls.CameraLeft,
	glfw.KeyRight: controls.CameraRight,
	glfw.KeyC:     controls.NextCamera,
}

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	scenePath := flag.String("scene", "default", "Built-in scene name or scene JSON file")
	width := flag.Int("width", scene.DefaultWidth, "Initial window width")
	height := flag.Int("height", scene.DefaultHeight, "Initial window height")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Parse()

	sceneObj, err := scene.Resolve(*scenePath)
	if err != nil {
		log.Fatalf("Error loading scene: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("failed to initialize glfw: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(*width, *height, "Whitted Raytracer", nil, nil)
	if err != nil {
		log.Fatalf("failed to create window: %v", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalf("failed to initialize OpenGL: %v", err)
	}

	// The framebuffer may be larger than the window on high-DPI displays
	fbWidth, fbHeight := window.GetFramebufferSize()

	config := renderer.DefaultConfig()
	config.Workers = *workers
	raytracer, err := renderer.NewRenderer(sceneObj, fbWidth, fbHeight, config, renderer.NewDefaultLogger())
	if err != nil {
		log.Fatalf("failed to create renderer: %v", err)
	}

	disp, err := newDisplay()
	if err != nil {
		log.Fatalf("failed to set up display: %v", err)
	}
	defer disp.delete()

	render := func() {
		if _, err := raytracer.Render(); err != nil {
			log.Printf("Render error: %v", err)
		}
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		// Minimized windows report a zero size
		if width <= 0 || height <= 0 {
			return
		}
		if err := raytracer.Resize(width, height); err != nil {
			log.Printf("Resize error: %v", err)
			return
		}
		gl.Viewport(0, 0, int32(width), int32(height))
		render()
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		command, ok := keyBindings[key]
		if !ok {
			return
		}
		if err := controls.Apply(sceneObj, command); err != nil {
			log.Printf("Key %v: %v", command, err)
			return
		}
		render()
	})

	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	render()

	for !window.ShouldClose() {
		disp.draw(raytracer.Frame())
		window.SwapBuffers()
		glfw.WaitEvents()
	}
}
