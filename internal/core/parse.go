package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"resolve-robotics-uri/internal/types"
)

var supportedSchemes = map[types.Scheme]struct{}{
	types.SchemePackage: {},
	types.SchemeModel:   {},
}

func IsSupportedScheme(scheme types.Scheme) bool {
	_, ok := supportedSchemes[scheme]
	return ok
}

// ParseResourceURI splits a package:// or model:// URI into scheme, package
// name, and sub-path segments. The name and sub-path are taken literally:
// no percent-decoding, no "."/".." normalization, no case folding. Empty
// segments from doubled slashes are preserved so the parse round-trips.
func ParseResourceURI(uri string) (types.ResourceURI, error) {
	scheme, rest, found := strings.Cut(uri, "://")
	if !found {
		return types.ResourceURI{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported URI scheme: no scheme in %q", uri))
	}
	if _, ok := supportedSchemes[types.Scheme(scheme)]; !ok {
		return types.ResourceURI{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported URI scheme %q", scheme+"://"))
	}

	name, sub, hasSub := strings.Cut(rest, "/")
	if name == "" {
		return types.ResourceURI{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("missing package name in %q", uri))
	}

	parsed := types.ResourceURI{
		Scheme:  types.Scheme(scheme),
		Package: name,
	}
	if hasSub {
		parsed.SubPath = strings.Split(sub, "/")
	}
	return parsed, nil
}

// ValidateURI checks the invariants of an already-parsed URI, for callers
// that construct ResourceURI values directly instead of going through
// ParseResourceURI.
func ValidateURI(ctx context.Context, uri types.ResourceURI) error {
	assert.NotEmpty(ctx, string(uri.Scheme), "scheme must be set")
	assert.NotEmpty(ctx, uri.Package, "package name must be set")
	if _, ok := supportedSchemes[uri.Scheme]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported URI scheme %q", string(uri.Scheme)+"://"))
	}
	if strings.ContainsAny(uri.Package, `/\`) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name must not contain path separators")
	}
	log.Ctx(ctx).Debug().Str("uri", uri.String()).Msg("uri validated")
	return nil
}
