package main

import (
	"log"

	"github.com/majestic/ai-backend/internal/builder"
)

func main() {
	app, err := builder.BuildQuiz()
	if err != nil {
		log.Fatal("Failed to build quiz service:", err)
	}

	if err := app.Run(); err != nil {
		log.Fatal("Application error:", err)
	}
}
