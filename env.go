package testfw

import (
	"os"
)

// GetEnv is used by the host tools for flag defaults.
func GetEnv(name string, defaultValue string) string {
	value, ok := os.LookupEnv(name)
	if !ok {
		return defaultValue
	}
	return value
}
