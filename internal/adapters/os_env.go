package adapters

import (
	"os"

	"resolve-robotics-uri/internal/ports"
)

// OSEnvAdapter reads the process environment. Values are looked up on every
// call so long-running callers that mutate the environment between
// resolutions see the current state.
type OSEnvAdapter struct{}

func NewOSEnvAdapter() OSEnvAdapter {
	return OSEnvAdapter{}
}

func (a OSEnvAdapter) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

var _ ports.EnvPort = OSEnvAdapter{}
