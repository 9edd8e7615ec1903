package ports

// EnvPort supplies environment variable values. The process environment is
// injected through this port so resolution stays deterministic under test
// and re-reads the environment on every call.
type EnvPort interface {
	// Lookup returns the value of the variable and whether it is set.
	Lookup(name string) (string, bool)
}
