package config

import "os"

// Development reports whether DEVELOPMENT is set to anything but "0". In
// development the logger runs at debug level regardless of MINES_LOG_LEVEL.
func Development() bool {
	value, ok := os.LookupEnv("DEVELOPMENT")
	return ok && value != "0"
}
