package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	scenePath := flag.String("scene", "default", "Built-in scene name or scene JSON file")
	flag.Parse()

	sceneObj, err := scene.Resolve(*scenePath)
	if err != nil {
		log.Printf("Error loading scene: %v", err)
		os.Exit(1)
	}

	// Create and start web server
	webServer := server.NewServer(*port, sceneObj)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Visit http://localhost:%d/api/render to render the current scene", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
