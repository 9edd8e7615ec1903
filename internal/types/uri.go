package types

import "strings"

// ResourceURI is a parsed package:// or model:// URI. The package name and
// sub-path segments are taken literally from the input: no percent-decoding,
// no "."/".." normalization, no case folding. Empty segments produced by
// doubled slashes are preserved so that String round-trips the input exactly.
type ResourceURI struct {
	Scheme  Scheme
	Package string
	SubPath []string
}

func (u ResourceURI) String() string {
	var b strings.Builder
	b.WriteString(string(u.Scheme))
	b.WriteString("://")
	b.WriteString(u.Package)
	for _, segment := range u.SubPath {
		b.WriteString("/")
		b.WriteString(segment)
	}
	return b.String()
}

// SubPathString returns the sub-path joined with forward slashes, empty for
// a URI that names only a package.
func (u ResourceURI) SubPathString() string {
	return strings.Join(u.SubPath, "/")
}
