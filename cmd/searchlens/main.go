package main

import (
	"log"

	"searchlens/analyzer/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("searchlens: %v", err)
	}
}
