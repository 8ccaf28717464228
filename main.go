package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	scenePath := flag.String("scene", "default", "Built-in scene name or scene JSON file")
	width := flag.Int("width", scene.DefaultWidth, "Image width in pixels")
	height := flag.Int("height", scene.DefaultHeight, "Image height in pixels")
	cameraIndex := flag.Int("camera", -1, "Camera to render from (-1 = the scene's active camera)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	outPath := flag.String("out", "", "Output PNG path (default output/render_<timestamp>.png)")
	dumpScene := flag.String("dump-scene", "", "Write the scene as JSON to this path and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		scenes, err := scene.ListAllScenes("scenes")
		if err != nil {
			fmt.Printf("  (failed to list scenes: %v)\n", err)
		}
		for _, info := range scenes {
			fmt.Printf("  %-24s %s\n", info.ID, info.Description)
		}
		fmt.Println()
		fmt.Println("Output will be saved to output/render_<timestamp>.png unless -out is given")
		return
	}

	selectedScene, err := loadScene(*scenePath)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	if *dumpScene != "" {
		if err := scene.Save(*dumpScene, selectedScene); err != nil {
			fmt.Printf("Error saving scene: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scene saved as %s\n", *dumpScene)
		return
	}

	if *cameraIndex >= 0 {
		selectedScene.SetActiveCamera(*cameraIndex)
	}

	fmt.Println("Starting Whitted Raytracer...")

	config := renderer.DefaultConfig()
	config.Workers = *workers

	raytracer, err := renderer.NewRenderer(selectedScene, *width, *height, config, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error creating renderer: %v\n", err)
		os.Exit(1)
	}

	stats, err := raytracer.Render()
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v\n", stats.Elapsed)
	fmt.Printf("Rays traced: %d (%.2f per pixel, max depth %d)\n",
		stats.Rays, float64(stats.Rays)/float64(stats.Pixels), stats.MaxDepth)

	filename := outputFilename(*outPath, time.Now())
	if err := savePNG(filename, raytracer.Frame().Image()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// loadScene builds a built-in scene by name or reads a scene description file
func loadScene(nameOrPath string) (*scene.Scene, error) {
	return scene.Resolve(nameOrPath)
}

// outputFilename returns out, or a timestamped name under output/ when out is empty
func outputFilename(out string, now time.Time) string {
	if out != "" {
		return out
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", fmt.Sprintf("render_%s.png", timestamp))
}

// savePNG encodes img to filename, creating parent directories as needed
func savePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return file.Close()
}
