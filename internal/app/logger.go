// Package app provides logger initialization.
package app

import (
	"os"

	"github.com/lulukitchen/cart-service/internal/logger"
)

// InitializeLogger configures the global JSON logger from LOG_LEVEL and
// LOG_PRETTY. Defaults to info-level JSON output.
func InitializeLogger() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	logger.Init(level, os.Getenv("LOG_PRETTY") == "true")
}
