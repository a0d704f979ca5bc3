// Package main implements the taskrank command-line client: it runs the
// task-prioritization engine in-process over a JSON file of tasks, without
// needing a running server.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
