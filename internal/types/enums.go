package types

type Scheme string

const (
	SchemePackage Scheme = "package"
	SchemeModel   Scheme = "model"
)

// Provenance records where a search root was gathered from. It determines
// precedence ordering and shows up in diagnostics, but never changes how a
// root is matched.
type Provenance string

const (
	ProvenanceCaller     Provenance = "caller"
	ProvenanceEnvPrimary Provenance = "env-primary"
	ProvenanceEnvAlias   Provenance = "env-alias"
	ProvenanceEnvExtra   Provenance = "env-extra"
)

type Layout string

const (
	// LayoutDirect joins root/package/sub-path.
	LayoutDirect Layout = "direct"
	// LayoutShare joins root/share/package/sub-path, the convention of
	// ROS-style install trees.
	LayoutShare Layout = "share"
)

type ProfileKind string

const (
	ProfileKindSearch ProfileKind = "search-profile"
)
