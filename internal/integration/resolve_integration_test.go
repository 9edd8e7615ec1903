package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resolve-robotics-uri/internal/app"
	"resolve-robotics-uri/internal/shared"
)

// The variables the collector consults, cleared so the surrounding
// environment cannot leak into the probes.
var consultedEnvVars = []string{
	"ROS_PACKAGE_PATH",
	"AMENT_PREFIX_PATH",
	"GAZEBO_MODEL_PATH",
	"GZ_SIM_RESOURCE_PATH",
	"IGN_GAZEBO_RESOURCE_PATH",
	"SDF_PATH",
	"ROBOTICS_RESOURCE_PATH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range consultedEnvVars {
		t.Setenv(name, "")
	}
}

func writeFile(t *testing.T, root string, relative ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{root}, relative...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
	return path
}

func TestResolveThroughEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	expected := writeFile(t, dir, "my_robot", "urdf", "model.urdf")
	t.Setenv("ROS_PACKAGE_PATH", shared.JoinPathList([]string{"/does/not/exist", dir}))

	service := app.NewService()
	result, err := service.Resolve(t.Context(), app.ResolveRequest{URI: "package://my_robot/urdf/model.urdf"})
	require.NoError(t, err)
	assert.Equal(t, expected, result.Path)
}

func TestResolveAmentInstallTree(t *testing.T) {
	clearEnv(t)
	prefix := t.TempDir()
	// ROS 2 install prefixes keep package resources under share/.
	expected := writeFile(t, prefix, "share", "my_robot", "urdf", "model.urdf")
	t.Setenv("AMENT_PREFIX_PATH", prefix)

	service := app.NewService()
	result, err := service.Resolve(t.Context(), app.ResolveRequest{URI: "package://my_robot/urdf/model.urdf"})
	require.NoError(t, err)
	assert.Equal(t, expected, result.Path)
}

func TestResolveModelThroughGazeboVariable(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	expected := writeFile(t, dir, "ground_plane", "model.sdf")
	t.Setenv("GZ_SIM_RESOURCE_PATH", dir)

	service := app.NewService()
	result, err := service.Resolve(t.Context(), app.ResolveRequest{URI: "model://ground_plane/model.sdf"})
	require.NoError(t, err)
	assert.Equal(t, expected, result.Path)
}

// A package:// lookup still finds resources published only through a Gazebo
// variable, and the other way around.
func TestResolveCrossSchemeAliases(t *testing.T) {
	clearEnv(t)
	gazeboDir := t.TempDir()
	rosDir := t.TempDir()
	viaGazebo := writeFile(t, gazeboDir, "pkg_from_gazebo", "x.urdf")
	viaROS := writeFile(t, rosDir, "model_from_ros", "x.sdf")
	t.Setenv("GAZEBO_MODEL_PATH", gazeboDir)
	t.Setenv("ROS_PACKAGE_PATH", rosDir)

	service := app.NewService()

	result, err := service.Resolve(t.Context(), app.ResolveRequest{URI: "package://pkg_from_gazebo/x.urdf"})
	require.NoError(t, err)
	assert.Equal(t, viaGazebo, result.Path)

	result, err = service.Resolve(t.Context(), app.ResolveRequest{URI: "model://model_from_ros/x.sdf"})
	require.NoError(t, err)
	assert.Equal(t, viaROS, result.Path)
}

func TestResolveAdditionalPathsVariable(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	expected := writeFile(t, dir, "my_model")
	t.Setenv("ROBOTICS_RESOURCE_PATH", dir)

	service := app.NewService()
	result, err := service.Resolve(t.Context(), app.ResolveRequest{URI: "model://my_model"})
	require.NoError(t, err)
	assert.Equal(t, expected, result.Path)
}

func TestResolveNotFoundReportsEveryProbe(t *testing.T) {
	clearEnv(t)
	t.Setenv("GZ_SIM_RESOURCE_PATH", shared.JoinPathList([]string{t.TempDir(), t.TempDir(), t.TempDir()}))

	service := app.NewService()
	_, err := service.Resolve(t.Context(), app.ResolveRequest{URI: "model://ghost/mesh.dae"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	probes, probeErr := service.Probes(t.Context(), app.ProbeRequest{URI: "model://ghost/mesh.dae"})
	require.NoError(t, probeErr)
	// 3 roots x 2 layouts.
	assert.Len(t, probes.Probes, 6)
	assert.Empty(t, probes.Hits)
}

func TestResolveIdempotentAgainstRealFilesystem(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "pkg", "x.urdf")
	t.Setenv("ROS_PACKAGE_PATH", dir)

	service := app.NewService()
	first, err := service.Resolve(t.Context(), app.ResolveRequest{URI: "package://pkg/x.urdf"})
	require.NoError(t, err)
	second, err := service.Resolve(t.Context(), app.ResolveRequest{URI: "package://pkg/x.urdf"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
