package ports

import "resolve-robotics-uri/internal/types"

// ProfilePort loads search profiles from disk.
type ProfilePort interface {
	Load(path string) (types.SearchProfile, error)
}
