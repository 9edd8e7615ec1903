package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"resolve-robotics-uri/internal/ports"
	"resolve-robotics-uri/internal/shared"
	"resolve-robotics-uri/internal/types"
)

type envVar struct {
	Name       string
	Provenance types.Provenance
}

// Environment variables consulted per scheme, in precedence order. The
// variable set matches the conventions of the tools that publish robot
// descriptions:
//   - ROS_PACKAGE_PATH: ROS 1
//   - AMENT_PREFIX_PATH: ROS 2 (install prefixes, packages live under share/)
//   - GAZEBO_MODEL_PATH: Gazebo Classic
//   - GZ_SIM_RESOURCE_PATH: Gazebo Sim >= 7
//   - IGN_GAZEBO_RESOURCE_PATH: Ignition Gazebo <= 7
//   - SDF_PATH: sdformat
//
// Each scheme consults its own variables first, then the other scheme's as
// aliases, since installed packages are commonly discoverable via either
// convention.
var schemeEnvVars = map[types.Scheme][]envVar{
	types.SchemePackage: {
		{Name: "ROS_PACKAGE_PATH", Provenance: types.ProvenanceEnvPrimary},
		{Name: "AMENT_PREFIX_PATH", Provenance: types.ProvenanceEnvPrimary},
		{Name: "GAZEBO_MODEL_PATH", Provenance: types.ProvenanceEnvAlias},
		{Name: "GZ_SIM_RESOURCE_PATH", Provenance: types.ProvenanceEnvAlias},
		{Name: "IGN_GAZEBO_RESOURCE_PATH", Provenance: types.ProvenanceEnvAlias},
		{Name: "SDF_PATH", Provenance: types.ProvenanceEnvAlias},
	},
	types.SchemeModel: {
		{Name: "GAZEBO_MODEL_PATH", Provenance: types.ProvenanceEnvPrimary},
		{Name: "GZ_SIM_RESOURCE_PATH", Provenance: types.ProvenanceEnvPrimary},
		{Name: "IGN_GAZEBO_RESOURCE_PATH", Provenance: types.ProvenanceEnvPrimary},
		{Name: "SDF_PATH", Provenance: types.ProvenanceEnvPrimary},
		{Name: "ROS_PACKAGE_PATH", Provenance: types.ProvenanceEnvAlias},
		{Name: "AMENT_PREFIX_PATH", Provenance: types.ProvenanceEnvAlias},
	},
}

// AdditionalPathsVar applies to every scheme, after all scheme-specific
// variables.
const AdditionalPathsVar = "ROBOTICS_RESOURCE_PATH"

// CollectSearchRoots assembles the ordered candidate roots for one scheme:
// caller-supplied directories first, then the scheme's environment variables,
// then the cross-scheme aliases, then AdditionalPathsVar. Environment values
// are split on the platform path-list separator; unset or empty variables
// contribute nothing. Duplicates are preserved in order, the first occurrence
// wins during matching.
func CollectSearchRoots(ctx context.Context, scheme types.Scheme, callerDirs []string, env ports.EnvPort) []types.SearchRoot {
	var roots []types.SearchRoot
	for _, dir := range callerDirs {
		if dir == "" {
			continue
		}
		roots = append(roots, types.SearchRoot{
			Dir:        dir,
			Provenance: types.ProvenanceCaller,
		})
	}

	vars := append([]envVar{}, schemeEnvVars[scheme]...)
	vars = append(vars, envVar{Name: AdditionalPathsVar, Provenance: types.ProvenanceEnvExtra})
	for _, v := range vars {
		value, ok := env.Lookup(v.Name)
		if !ok || value == "" {
			continue
		}
		for _, dir := range shared.SplitPathList(value) {
			roots = append(roots, types.SearchRoot{
				Dir:        dir,
				Provenance: v.Provenance,
				Source:     v.Name,
			})
		}
	}

	log.Ctx(ctx).Debug().
		Str("scheme", string(scheme)).
		Int("roots", len(roots)).
		Msg("search roots collected")
	return roots
}
