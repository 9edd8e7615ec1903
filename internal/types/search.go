package types

// SearchRoot is a candidate directory in which package directories are
// expected to live. Source holds the environment variable name for roots
// gathered from the environment, empty for caller-supplied roots.
type SearchRoot struct {
	Dir        string
	Provenance Provenance
	Source     string
}

// Probe is one concrete candidate path checked for existence.
type Probe struct {
	Path   string
	Root   SearchRoot
	Layout Layout
}

// Resolution is the outcome of resolving one URI. Path is set only on
// success; Probes always carries every candidate that was (or would be)
// checked, in precedence order, so failures stay diagnosable.
type Resolution struct {
	URI    string
	Path   string
	Probes []Probe
}
