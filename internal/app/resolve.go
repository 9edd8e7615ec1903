package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"resolve-robotics-uri/internal/core"
	"resolve-robotics-uri/internal/types"
)

// Resolve parses the request URI and returns the first existing absolute
// path across the caller directories, the optional search profile, and the
// environment.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	uri, dirs, err := s.prepare(req.URI, req.Paths, req.Profile)
	if err != nil {
		return ResolveResult{}, err
	}
	resolver := core.NewResolverCore(s.Env, s.FS)
	result, err := resolver.Resolve(ctx, uri, dirs)
	if err != nil {
		return ResolveResult{}, err
	}
	return ResolveResult{URI: result.URI, Path: result.Path}, nil
}

// Probes returns every candidate path for the request URI in precedence
// order, plus which of them currently exist. Unlike Resolve it never fails
// on a miss: an empty Hits list is a valid answer.
func (s Service) Probes(ctx context.Context, req ProbeRequest) (ProbeResult, error) {
	uri, dirs, err := s.prepare(req.URI, req.Paths, req.Profile)
	if err != nil {
		return ProbeResult{}, err
	}
	roots := core.CollectSearchRoots(ctx, uri.Scheme, dirs, s.Env)
	probes := core.Candidates(uri, roots)
	result := ProbeResult{URI: uri.String(), Probes: probes}
	for _, probe := range probes {
		if s.FS.Exists(probe.Path) {
			result.Hits = append(result.Hits, probe.Path)
		}
	}
	return result, nil
}

// Roots returns the ordered search roots that would be consulted for a
// scheme, with provenance, without touching the filesystem.
func (s Service) Roots(ctx context.Context, req RootsRequest) (RootsResult, error) {
	scheme := types.Scheme(strings.TrimSpace(req.Scheme))
	if !core.IsSupportedScheme(scheme) {
		return RootsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported URI scheme %q", string(scheme)+"://"))
	}
	dirs, err := s.callerDirs(scheme, req.Paths, req.Profile)
	if err != nil {
		return RootsResult{}, err
	}
	return RootsResult{
		Scheme: scheme,
		Roots:  core.CollectSearchRoots(ctx, scheme, dirs, s.Env),
	}, nil
}

func (s Service) prepare(uriText string, paths []string, profilePath string) (types.ResourceURI, []string, error) {
	trimmed := strings.TrimSpace(uriText)
	if trimmed == "" {
		return types.ResourceURI{}, nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("uri is required")
	}
	uri, err := core.ParseResourceURI(trimmed)
	if err != nil {
		return types.ResourceURI{}, nil, err
	}
	dirs, err := s.callerDirs(uri.Scheme, paths, profilePath)
	if err != nil {
		return types.ResourceURI{}, nil, err
	}
	return uri, dirs, nil
}

// callerDirs merges explicit directories with profile directories. Explicit
// directories come first: a flag on the command line is more direct intent
// than a profile file.
func (s Service) callerDirs(scheme types.Scheme, paths []string, profilePath string) ([]string, error) {
	dirs := append([]string{}, paths...)
	if profilePath == "" {
		return dirs, nil
	}
	profile, err := s.Profile.Load(profilePath)
	if err != nil {
		return nil, err
	}
	return append(dirs, profile.DirsFor(scheme)...), nil
}
