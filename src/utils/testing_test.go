package utils

import "ticker-engine/src/logger"

// testLogger returns a quiet logger for the package tests.
func testLogger() *logger.Logger {
	return logger.NewLogger("ERROR", "utils-test")
}
