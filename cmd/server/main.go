// Package main implements the entry point for the taskrank API server,
// which ranks batches of tasks by urgency, importance and effort and
// reports circular dependency chains among them.
package main

import (
	"context"
	"log"
)

// main is the entry point for the taskrank-api server. It initializes
// configuration, logging and the analyzer service, then runs the HTTP
// server until shutdown.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
