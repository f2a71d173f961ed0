package main

import (
	"io"
	"log"
	"os"

	"Planner/FiberConfig"
	"Planner/Models"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	setupLogging()

	db, err := Models.Connect(env("DATABASE_PATH", "users.db"))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	uploadDir := env("UPLOAD_DIR", "static/uploads")
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	app := FiberConfig.New(db, FiberConfig.Config{
		TemplatesDir: "./Templates",
		UploadDir:    uploadDir,
	})

	log.Println("Server Up...")
	log.Fatal(app.Listen(":" + env("PORT", "8080")))
}

func setupLogging() {
	// Create logs directory if it doesn't exist
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
		return
	}

	logFile, err := os.OpenFile("logs/application.log",
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}

	log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	log.SetFlags(log.Ldate | log.Ltime)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
