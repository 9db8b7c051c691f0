// Package main implements the entry point for the TaskHive API server,
// which provides task management and user authentication over HTTP.
package main

import (
	"log"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(); err != nil {
		log.Fatalf("Server terminated with error: %v", err)
	}
}
