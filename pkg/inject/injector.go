package inject

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gradlepatch/pkg/buildscript"
	"github.com/arthur-debert/gradlepatch/pkg/comments"
	"github.com/arthur-debert/gradlepatch/pkg/config"
	"github.com/arthur-debert/gradlepatch/pkg/dialect"
	"github.com/arthur-debert/gradlepatch/pkg/oracle"
	"github.com/arthur-debert/gradlepatch/pkg/patch"
	"github.com/arthur-debert/gradlepatch/pkg/types"
	"github.com/rs/zerolog"
)

// Step names as reported in results
const (
	StepSdkDependency         = "sdk-dependency"
	StepBuildscriptDependency = "buildscript-dependency"
	StepPluginApplied         = "plugin-applied"
)

// Injector holds the directives and collaborators of an injection run
type Injector struct {
	Applier *patch.Applier
	Oracle  *oracle.Oracle
	Logger  zerolog.Logger

	Sdk         types.Directive
	Plugin      types.Directive
	PluginID    string
	Buildscript types.BuildscriptDirective

	// FragmentDir holds the descriptor fragments copied into the module
	FragmentDir string
}

// New builds an Injector from configuration
func New(fsys types.FS, cfg *config.Config, fragmentDir string, logger zerolog.Logger) *Injector {
	o := oracle.New(logger.With().Str("component", "oracle").Logger())
	if len(cfg.Classpath.Markers) > 0 {
		o.Markers = cfg.Classpath.Markers
	}
	return &Injector{
		Applier:     patch.NewApplier(fsys, logger.With().Str("component", "patch").Logger()),
		Oracle:      o,
		Logger:      logger,
		Sdk:         cfg.SdkDirective(),
		Plugin:      cfg.PluginDirective(),
		PluginID:    cfg.Plugin.ID,
		Buildscript: cfg.BuildscriptDirective(),
		FragmentDir: fragmentDir,
	}
}

// Run executes the ensure steps in order and stops at the first error. The
// returned result lists the steps completed so far, also on error.
func (i *Injector) Run(m types.Module) (*types.InjectResult, error) {
	i.Logger.Info().
		Str("module", m.Name()).
		Str("build_file", m.BuildFile()).
		Msg("Injecting into module")

	result := &types.InjectResult{Module: m.Name()}
	steps := []func(types.Module) (types.StepResult, error){
		i.EnsureSdkDependency,
		i.EnsureBuildscriptDependency,
		i.EnsurePluginApplied,
	}
	for _, step := range steps {
		r, err := step(m)
		if err != nil {
			return result, err
		}
		result.Steps = append(result.Steps, r)
	}
	return result, nil
}

// EnsureSdkDependency makes the module depend on the SDK
func (i *Injector) EnsureSdkDependency(m types.Module) (types.StepResult, error) {
	res := types.StepResult{Step: StepSdkDependency, File: m.BuildFile()}
	if i.Oracle.HasDependency(m, i.Sdk.Dependency) {
		i.Logger.Info().
			Str("dependency", i.Sdk.Dependency.Coordinate()).
			Msg("Skipping SDK dependency, make sure it is declared for all the required configurations")
		return skipped(res, types.ReasonDeclared), nil
	}
	return i.applyFragment(m, res, i.Sdk)
}

// EnsurePluginApplied makes the module apply the plugin
func (i *Injector) EnsurePluginApplied(m types.Module) (types.StepResult, error) {
	res := types.StepResult{Step: StepPluginApplied, File: m.BuildFile()}
	if i.Oracle.HasPlugin(m, i.PluginID) {
		i.Logger.Info().
			Str("module", m.Name()).
			Str("plugin", i.PluginID).
			Msg("Plugin already applied, skipping")
		return skipped(res, types.ReasonDeclared), nil
	}
	return i.applyFragment(m, res, i.Plugin)
}

// applyFragment copies the directive's fragment file into the module
// directory and appends an apply statement for it to the build file
func (i *Injector) applyFragment(m types.Module, res types.StepResult, d types.Directive) (types.StepResult, error) {
	path := m.BuildFile()
	dia, err := dialect.ForPath(path)
	if err != nil {
		return res, err
	}
	statement := dia.ApplyStatement(d.FragmentFile)

	present, err := i.present(path, d.FragmentFile)
	if err != nil {
		return res, err
	}
	if present {
		i.Logger.Info().
			Str("path", path).
			Str("fragment", d.FragmentFile).
			Msg("Apply statement already present, skipping")
		return skipped(res, types.ReasonPresent), nil
	}

	i.Logger.Info().
		Str("dependency", d.Dependency.Coordinate()).
		Str("module", m.Name()).
		Msg("Adding dependency")

	dst := filepath.Join(m.Dir(), d.FragmentFile)
	if err := i.Applier.Copy(filepath.Join(i.FragmentDir, d.FragmentFile), dst); err != nil {
		return res, err
	}
	if err := i.Applier.Append(path, statement); err != nil {
		return res, err
	}

	res.Status = types.StepApplied
	res.Strategy = types.StrategyAppend
	res.Copied = dst
	return res, nil
}

// EnsureBuildscriptDependency puts the plugin on the module's buildscript
// classpath. An existing block is rewritten in place, which drops every
// comment of the file; otherwise a new block is appended.
func (i *Injector) EnsureBuildscriptDependency(m types.Module) (types.StepResult, error) {
	res := types.StepResult{Step: StepBuildscriptDependency, File: m.BuildFile()}
	d := i.Buildscript
	if i.Oracle.HasBuildscriptDependency(m, d.Dependency) {
		i.Logger.Info().
			Str("dependency", d.Dependency.Coordinate()).
			Msg("Skipping buildscript dependency, already on the classpath")
		return skipped(res, types.ReasonDeclared), nil
	}

	path := m.BuildFile()
	dia, err := dialect.ForPath(path)
	if err != nil {
		return res, err
	}
	spec := buildscript.BlockSpec{
		Keyword:      d.Keyword,
		Injection:    dia.ClasspathStatement(d.Configuration, d.Dependency.Coordinate()),
		Repositories: d.Repositories,
		Dialect:      dia,
	}

	text, err := i.Applier.Read(path)
	if err != nil {
		return res, err
	}
	// any version of the plugin inside the block counts, like in the module model
	body, _ := buildscript.Body(comments.MaskText(text), d.Keyword)
	if strings.Contains(body, d.Dependency.Group+":"+d.Dependency.Name) {
		i.Logger.Info().
			Str("path", path).
			Msg("Classpath coordinate already present, skipping")
		return skipped(res, types.ReasonPresent), nil
	}

	if content, ok := buildscript.Rewrite(text, spec); ok {
		if err := i.Applier.Replace(path, content); err != nil {
			return res, err
		}
		i.Logger.Info().Str("path", path).Msg("Updated buildscript block")
		res.Status = types.StepApplied
		res.Strategy = types.StrategyReplace
		return res, nil
	}

	i.Logger.Debug().Str("path", path).Msg("No buildscript block, adding one")
	if err := i.Applier.Append(path, buildscript.NewBlock(spec)); err != nil {
		return res, err
	}
	res.Status = types.StepApplied
	res.Strategy = types.StrategyAppend
	return res, nil
}

// present reports whether the uncommented text of the file at path
// already applies file, in whatever form it was written
func (i *Injector) present(path, file string) (bool, error) {
	text, err := i.Applier.Read(path)
	if err != nil {
		return false, err
	}
	return dialect.Applies(comments.MaskText(text), file), nil
}

func skipped(res types.StepResult, reason string) types.StepResult {
	res.Status = types.StepSkipped
	res.Reason = reason
	return res
}
