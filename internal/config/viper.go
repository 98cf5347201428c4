package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	// Check OS env directly first
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// bindRequired binds the daemon's required environment variables so viper
// resolves them regardless of key casing.
func bindRequired() {
	required := []string{
		EnvBaseURL,
		EnvRequiredModels,
		EnvStartupTimeout,
		EnvRequestTimeout,
		EnvLoopInterval,
	}

	for _, key := range required {
		if err := viper.BindEnv(key); err != nil {
			// Binding failures are unusual but not fatal; AutomaticEnv still
			// resolves exact-case lookups.
			fmt.Fprintf(os.Stderr, "Warning: failed to bind %s: %v\n", key, err)
		}
	}
}
