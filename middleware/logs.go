package middleware

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"Planner/Models"

	"github.com/gofiber/fiber/v2"
)

// LogConfig holds configuration for the logging middleware
type LogConfig struct {
	// Enable console logging
	Console bool
	// Enable file logging
	File bool
	// Log file path
	LogFilePath string
	// Skip logging for paths with these prefixes
	SkipPaths []string
}

// LogData contains all the information that will be logged
type LogData struct {
	Timestamp time.Time     `json:"timestamp"`
	Method    string        `json:"method"`
	Path      string        `json:"path"`
	Status    int           `json:"status"`
	Latency   time.Duration `json:"latency"`
	IP        string        `json:"ip"`
	Error     string        `json:"error,omitempty"`
	UserID    interface{}   `json:"user_id,omitempty"`
	Username  string        `json:"username,omitempty"`
}

// LoggingMiddleware creates a new logging middleware with the given configuration
func LoggingMiddleware(cfg LogConfig) fiber.Handler {
	if cfg.File {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFilePath), 0755); err != nil {
			log.Printf("Error creating log directory: %v\n", err)
			cfg.File = false
		}
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		for _, skip := range cfg.SkipPaths {
			if strings.HasPrefix(c.Path(), skip) {
				return c.Next()
			}
		}

		err := c.Next()

		data := LogData{
			Timestamp: start,
			Method:    c.Method(),
			Path:      c.Path(),
			Status:    c.Response().StatusCode(),
			Latency:   time.Since(start),
			IP:        c.IP(),
		}
		if user := c.Locals("user"); user != nil {
			if u, ok := user.(Models.User); ok {
				data.UserID = u.Id
				data.Username = u.Username
			}
		}
		if err != nil {
			data.Error = err.Error()
		}

		logRequest(cfg, data)
		return err
	}
}

// logRequest handles the actual logging based on configuration
func logRequest(cfg LogConfig, data LogData) {
	jsonData, _ := json.Marshal(data)
	message := string(jsonData)

	if cfg.Console {
		log.Println(message)
	}
	if cfg.File {
		logToFile(cfg.LogFilePath, message)
	}
}

// logToFile appends the log message to a file
func logToFile(filePath, message string) {
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}
	defer file.Close()

	if _, err := file.WriteString(message + "\n"); err != nil {
		log.Printf("Error writing to log file: %v\n", err)
	}
}

// RequestLogger logs every request to the console, and to the file named by
// REQUEST_LOG_FILE when that is set.
func RequestLogger() fiber.Handler {
	cfg := LogConfig{
		Console:   true,
		SkipPaths: []string{"/static"},
	}
	if path := os.Getenv("REQUEST_LOG_FILE"); path != "" {
		cfg.File = true
		cfg.LogFilePath = path
	}
	return LoggingMiddleware(cfg)
}
