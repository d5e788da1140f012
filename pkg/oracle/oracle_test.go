// pkg/oracle/oracle_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: testify/mock module doubles
// PURPOSE: Test the idempotency checks against module handles

package oracle_test

import (
	"testing"

	"github.com/arthur-debert/gradlepatch/pkg/oracle"
	"github.com/arthur-debert/gradlepatch/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var dummy = types.Dependency{Group: "io.bitrise.dummy", Name: "dummy-dependency"}

type mockSet struct {
	mock.Mock
}

func (m *mockSet) Configurations() []string {
	return m.Called().Get(0).([]string)
}

func (m *mockSet) Dependencies(configuration string) []types.Dependency {
	return m.Called(configuration).Get(0).([]types.Dependency)
}

type mockModule struct {
	mockSet
	buildscript types.ConfigurationSet
	plugins     []string
}

func (m *mockModule) Name() string                         { return "app" }
func (m *mockModule) Dir() string                          { return "/project/app" }
func (m *mockModule) BuildFile() string                    { return "/project/app/build.gradle" }
func (m *mockModule) Buildscript() types.ConfigurationSet { return m.buildscript }
func (m *mockModule) AppliedPlugins() []string             { return m.plugins }

func newOracle() *oracle.Oracle {
	return oracle.New(zerolog.Nop())
}

func TestConfigurationHasDependency(t *testing.T) {
	t.Run("true", func(t *testing.T) {
		set := &mockSet{}
		set.On("Dependencies", "debugCompileClasspath").
			Return([]types.Dependency{{Group: dummy.Group, Name: dummy.Name, Version: "1.2.3"}})

		found, ok := oracle.ConfigurationHasDependency(set, "debugCompileClasspath", dummy)
		assert.True(t, ok)
		assert.Equal(t, "1.2.3", found.Version)
		set.AssertExpectations(t)
	})

	t.Run("false_for_other_group", func(t *testing.T) {
		set := &mockSet{}
		set.On("Dependencies", "debugCompileClasspath").
			Return([]types.Dependency{{Group: "not.bitrise.group", Name: dummy.Name}})

		_, ok := oracle.ConfigurationHasDependency(set, "debugCompileClasspath", dummy)
		assert.False(t, ok)
	})
}

func TestHasDependency(t *testing.T) {
	t.Run("found_in_runtime_classpath", func(t *testing.T) {
		m := &mockModule{}
		m.On("Configurations").Return([]string{"implementation", "releaseRuntimeClasspath"})
		m.On("Dependencies", "releaseRuntimeClasspath").Return([]types.Dependency{dummy})

		assert.True(t, newOracle().HasDependency(m, dummy))
		m.AssertExpectations(t)
		m.AssertNotCalled(t, "Dependencies", "implementation")
	})

	t.Run("non_classpath_configurations_are_ignored", func(t *testing.T) {
		m := &mockModule{}
		m.On("Configurations").Return([]string{"implementation", "api"})

		assert.False(t, newOracle().HasDependency(m, dummy))
		m.AssertNotCalled(t, "Dependencies", mock.Anything)
	})

	t.Run("marker_match_is_case_insensitive", func(t *testing.T) {
		m := &mockModule{}
		m.On("Configurations").Return([]string{"DEBUGCOMPILECLASSPATH"})
		m.On("Dependencies", "DEBUGCOMPILECLASSPATH").Return([]types.Dependency{dummy})

		assert.True(t, newOracle().HasDependency(m, dummy))
	})

	t.Run("not_declared", func(t *testing.T) {
		m := &mockModule{}
		m.On("Configurations").Return([]string{"debugCompileClasspath", "debugRuntimeClasspath"})
		m.On("Dependencies", mock.Anything).Return([]types.Dependency{{Group: "androidx.core", Name: "core"}})

		assert.False(t, newOracle().HasDependency(m, dummy))
		m.AssertNumberOfCalls(t, "Dependencies", 2)
	})

	t.Run("custom_markers", func(t *testing.T) {
		m := &mockModule{}
		m.On("Configurations").Return([]string{"implementation"})
		m.On("Dependencies", "implementation").Return([]types.Dependency{dummy})

		o := newOracle()
		o.Markers = []string{"Implementation"}
		assert.True(t, o.HasDependency(m, dummy))
	})
}

func TestHasBuildscriptDependency(t *testing.T) {
	t.Run("all_configurations_inspected", func(t *testing.T) {
		bs := &mockSet{}
		bs.On("Configurations").Return([]string{"classpath", "other"})
		bs.On("Dependencies", "classpath").Return([]types.Dependency{{Group: "com.android.tools.build", Name: "gradle"}})
		bs.On("Dependencies", "other").Return([]types.Dependency{dummy})

		m := &mockModule{buildscript: bs}
		assert.True(t, newOracle().HasBuildscriptDependency(m, dummy))
		bs.AssertExpectations(t)
	})

	t.Run("absent", func(t *testing.T) {
		bs := &mockSet{}
		bs.On("Configurations").Return([]string{"classpath"})
		bs.On("Dependencies", "classpath").Return([]types.Dependency{})

		m := &mockModule{buildscript: bs}
		assert.False(t, newOracle().HasBuildscriptDependency(m, dummy))
	})

	t.Run("no_buildscript", func(t *testing.T) {
		assert.False(t, newOracle().HasBuildscriptDependency(&mockModule{}, dummy))
	})
}

func TestHasPlugin(t *testing.T) {
	m := &mockModule{plugins: []string{"com.android.application", "io.bitrise.trace.plugin"}}

	assert.True(t, newOracle().HasPlugin(m, "io.bitrise.trace.plugin"))
	assert.False(t, newOracle().HasPlugin(m, "kotlin-android"))
	assert.False(t, newOracle().HasPlugin(&mockModule{}, "io.bitrise.trace.plugin"))
}
