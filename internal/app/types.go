package app

import "resolve-robotics-uri/internal/types"

type ResolveRequest struct {
	URI     string
	Paths   []string
	Profile string
}

type ResolveResult struct {
	URI  string
	Path string
}

type ProbeRequest struct {
	URI     string
	Paths   []string
	Profile string
}

type ProbeResult struct {
	URI    string
	Probes []types.Probe
	Hits   []string
}

type RootsRequest struct {
	Scheme  string
	Paths   []string
	Profile string
}

type RootsResult struct {
	Scheme types.Scheme
	Roots  []types.SearchRoot
}
