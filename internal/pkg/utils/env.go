package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// lookupEnv parses key with parse. An unset key, or one that does not parse,
// yields defaultValue.
func lookupEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	parsed, err := parse(strings.TrimSpace(value))
	if err != nil {
		log.Printf("formfillout-service: ignoring %s=%q (%v), falling back to %v", key, value, err, defaultValue)
		return defaultValue
	}
	return parsed
}

func GetEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	return lookupEnv(key, defaultValue, func(value string) (float64, error) {
		return strconv.ParseFloat(value, 64)
	})
}
