// Package config provides the configuration management for the ntmul
// application. This file contains environment variable utilities for
// configuration override.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// getEnvString returns the value of the environment variable with the
// given key (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the value of the environment variable with the
// given key (prefixed with EnvPrefix) parsed as int, or the default
// value if not set or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the
// given key (prefixed with EnvPrefix) parsed as bool, or the default
// value if not set. Accepts "true", "1", "yes" as true; "false", "0",
// "no" as false (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvDuration returns the value of the environment variable with the
// given key (prefixed with EnvPrefix) parsed as time.Duration, or the
// default value if not set or invalid. Accepts formats like "5m", "30s".
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides applies environment variable values to the
// configuration for any flags that were not explicitly set on the
// command line, implementing the priority:
// CLI flags > environment variables > defaults.
//
// Supported environment variables:
//   - NTMUL_TIMEOUT: Calculation timeout (duration: "5m", "30s")
//   - NTMUL_PARALLEL_THRESHOLD: Parallel recursion threshold (int)
//   - NTMUL_PORT: Port for server mode (string)
//   - NTMUL_OUTPUT: Output file path (string)
//   - NTMUL_SERVER: Enable server mode (bool: true/false, 1/0, yes/no)
//   - NTMUL_JSON: Enable JSON output (bool)
//   - NTMUL_VERBOSE: Enable verbose output (bool)
//   - NTMUL_QUIET: Enable quiet mode (bool)
//   - NTMUL_INTERACTIVE: Enable interactive mode (bool)
//   - NTMUL_NO_COLOR: Disable colored output (bool)
//   - NTMUL_NO_VALIDATE: Skip operand validation (bool)
//   - NTMUL_VERIFY: Cross-check results against math/big (bool)
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "timeout") {
		config.Timeout = getEnvDuration("TIMEOUT", config.Timeout)
	}
	if !isFlagSet(fs, "parallel-threshold") {
		config.ParallelThreshold = getEnvInt("PARALLEL_THRESHOLD", config.ParallelThreshold)
	}
	if !isFlagSet(fs, "port") {
		config.Port = getEnvString("PORT", config.Port)
	}
	if !isFlagSet(fs, "output") && !isFlagSet(fs, "o") {
		config.OutputFile = getEnvString("OUTPUT", config.OutputFile)
	}
	if !isFlagSet(fs, "server") {
		config.ServerMode = getEnvBool("SERVER", config.ServerMode)
	}
	if !isFlagSet(fs, "json") {
		config.JSONOutput = getEnvBool("JSON", config.JSONOutput)
	}
	if !isFlagSet(fs, "v") {
		config.Verbose = getEnvBool("VERBOSE", config.Verbose)
	}
	if !isFlagSet(fs, "quiet") && !isFlagSet(fs, "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "interactive") {
		config.Interactive = getEnvBool("INTERACTIVE", config.Interactive)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR", config.NoColor)
	}
	if !isFlagSet(fs, "no-validate") {
		config.NoValidate = getEnvBool("NO_VALIDATE", config.NoValidate)
	}
	if !isFlagSet(fs, "verify") {
		config.Verify = getEnvBool("VERIFY", config.Verify)
	}
}
