package types

// SearchProfile is an optional YAML file declaring extra search directories,
// either for every scheme or for a single one.
type SearchProfile struct {
	Kind    ProfileKind         `yaml:"kind"`
	Paths   []string            `yaml:"paths"`
	Schemes map[Scheme][]string `yaml:"schemes"`
}

// DirsFor returns the profile directories that apply to a scheme: the global
// paths first, then the scheme-specific ones.
func (p SearchProfile) DirsFor(scheme Scheme) []string {
	dirs := append([]string{}, p.Paths...)
	dirs = append(dirs, p.Schemes[scheme]...)
	return dirs
}
