package common

import (
	"fmt"
	"os"

	"github.com/yevv0ne/placepick/infrastructures/config"
)

// Environment is the runtime environment kind.
type Environment string

const (
	EnvDev       Environment = "dev"
	EnvProd      Environment = "prod"
	EnvContainer Environment = "container"
)

var validEnvironments = map[string]bool{
	"dev":       true,
	"prod":      true,
	"container": true,
}

// GetCurrentEnvironment reads the configured environment, validating it and
// falling back to system detection when the value is missing or invalid.
func GetCurrentEnvironment() Environment {
	configEnv := config.GetInstance().Environment

	if configEnv == "" || !validEnvironments[configEnv] {
		if configEnv == "" {
			fmt.Fprintf(os.Stderr, "[ENV_ERROR] environment field is empty, deriving from system\n")
		} else {
			fmt.Fprintf(os.Stderr, "[ENV_ERROR] environment value '%s' is invalid, valid values: dev, prod, container. deriving from system\n", configEnv)
		}

		return deriveEnvironmentFromSystem()
	}

	return Environment(configEnv)
}

func deriveEnvironmentFromSystem() Environment {
	if IsRunningInContainer() {
		fmt.Fprintf(os.Stderr, "[ENV_FALLBACK] container detected, deriving: container\n")
		return EnvContainer
	}

	if os.Getenv("GIN_MODE") == "release" {
		fmt.Fprintf(os.Stderr, "[ENV_FALLBACK] GIN_MODE=release detected, deriving: prod\n")
		return EnvProd
	}

	fmt.Fprintf(os.Stderr, "[ENV_FALLBACK] environment unknown, defaulting to: dev\n")
	return EnvDev
}

// ShouldUseStderr reports whether logs should go to stderr (dev and container).
func ShouldUseStderr() bool {
	env := GetCurrentEnvironment()
	return env == EnvDev || env == EnvContainer
}

// IsRunningInContainer detects common container runtime markers.
func IsRunningInContainer() bool {
	containerIndicators := []string{
		"KUBERNETES_SERVICE_HOST",
		"DOCKER_CONTAINER",
		"container",
	}

	for _, indicator := range containerIndicators {
		if os.Getenv(indicator) != "" {
			return true
		}
	}

	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	return false
}
