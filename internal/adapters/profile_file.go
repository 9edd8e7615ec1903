package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"resolve-robotics-uri/internal/ports"
	"resolve-robotics-uri/internal/types"
)

// ProfileFileAdapter loads search profiles: YAML files declaring extra
// search directories, globally or per scheme.
type ProfileFileAdapter struct{}

func NewProfileFileAdapter() ProfileFileAdapter {
	return ProfileFileAdapter{}
}

func (a ProfileFileAdapter) Load(path string) (types.SearchProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SearchProfile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("search profile not found").
			WithCause(err)
	}
	var profile types.SearchProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return types.SearchProfile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse search profile yaml").
			WithCause(err)
	}
	if profile.Kind != types.ProfileKindSearch {
		return types.SearchProfile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("profile kind is not search-profile")
	}
	return profile, nil
}

var _ ports.ProfilePort = ProfileFileAdapter{}
