package core

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"resolve-robotics-uri/internal/ports"
	"resolve-robotics-uri/internal/types"
)

type ResolverCore struct {
	Env ports.EnvPort
	FS  ports.FilesystemPort
}

func NewResolverCore(env ports.EnvPort, fs ports.FilesystemPort) ResolverCore {
	return ResolverCore{
		Env: env,
		FS:  fs,
	}
}

// Resolve finds the first existing path for a URI across caller-supplied
// directories and the scheme's environment variables. The environment is
// read on every call. On success the returned Resolution carries the
// absolute matching path; on failure it still carries the full ordered probe
// list and the error enumerates every path that was tried.
func (r ResolverCore) Resolve(ctx context.Context, uri types.ResourceURI, callerDirs []string) (types.Resolution, error) {
	if r.Env == nil || r.FS == nil {
		return types.Resolution{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires env and filesystem ports")
	}
	if err := ValidateURI(ctx, uri); err != nil {
		return types.Resolution{}, err
	}

	roots := CollectSearchRoots(ctx, uri.Scheme, callerDirs, r.Env)
	result := types.Resolution{
		URI:    uri.String(),
		Probes: Candidates(uri, roots),
	}

	for _, probe := range result.Probes {
		if !r.FS.Exists(probe.Path) {
			continue
		}
		abs, err := r.FS.Abs(probe.Path)
		if err != nil {
			return result, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to absolutize matched path %q", probe.Path)).
				WithCause(err)
		}
		result.Path = abs
		log.Ctx(ctx).Debug().
			Str("uri", result.URI).
			Str("path", abs).
			Str("layout", string(probe.Layout)).
			Msg("uri resolved")
		return result, nil
	}

	return result, notFoundError(result)
}

// Candidates returns every concrete path that Resolve would probe for the
// URI, in precedence order. Both layouts for a root are listed before the
// next root, so an earlier root wins even when it only matches through its
// share tree.
func Candidates(uri types.ResourceURI, roots []types.SearchRoot) []types.Probe {
	probes := make([]types.Probe, 0, len(roots)*2)
	for _, root := range roots {
		probes = append(probes, types.Probe{
			Path:   candidatePath(root.Dir, uri, types.LayoutDirect),
			Root:   root,
			Layout: types.LayoutDirect,
		})
		probes = append(probes, types.Probe{
			Path:   candidatePath(root.Dir, uri, types.LayoutShare),
			Root:   root,
			Layout: types.LayoutShare,
		})
	}
	return probes
}

func candidatePath(dir string, uri types.ResourceURI, layout types.Layout) string {
	parts := make([]string, 0, len(uri.SubPath)+3)
	parts = append(parts, dir)
	if layout == types.LayoutShare {
		parts = append(parts, "share")
	}
	parts = append(parts, uri.Package)
	parts = append(parts, uri.SubPath...)
	return filepath.Join(parts...)
}

func notFoundError(result types.Resolution) error {
	var b strings.Builder
	fmt.Fprintf(&b, "no file or directory matching URI %q, searched %d paths:", result.URI, len(result.Probes))
	for _, probe := range result.Probes {
		source := string(probe.Root.Provenance)
		if probe.Root.Source != "" {
			source += " " + probe.Root.Source
		}
		fmt.Fprintf(&b, "\n  %s [%s, %s layout]", probe.Path, source, probe.Layout)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(b.String())
}
