package gradlepatch

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/gradlepatch/internal/version"
	"github.com/arthur-debert/gradlepatch/pkg/comments"
	"github.com/arthur-debert/gradlepatch/pkg/dialect"
	"github.com/arthur-debert/gradlepatch/pkg/filesystem"
	"github.com/arthur-debert/gradlepatch/pkg/inject"
	"github.com/arthur-debert/gradlepatch/pkg/logging"
	"github.com/arthur-debert/gradlepatch/pkg/output"
	"github.com/arthur-debert/gradlepatch/pkg/patch"
	"github.com/arthur-debert/gradlepatch/pkg/project"
	"github.com/arthur-debert/gradlepatch/pkg/step"
	"github.com/arthur-debert/gradlepatch/pkg/types"
	"github.com/spf13/cobra"
)

// injectOptions are shared by inject and setup
type injectOptions struct {
	snapshot    string
	module      string
	fragmentDir string
}

func (i *injectOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&i.snapshot, "snapshot", "", MsgFlagSnapshot)
	cmd.Flags().StringVar(&i.module, "module", "", MsgFlagModule)
	cmd.Flags().StringVar(&i.fragmentDir, "fragment-dir", "", MsgFlagFragmentDir)
	_ = cmd.MarkFlagRequired("snapshot")
	_ = cmd.MarkFlagFilename("snapshot", "yaml", "yml", "toml", "json")
	_ = cmd.MarkFlagDirname("fragment-dir")
}

// run loads the snapshot, picks the module and injects into it. projectDir
// locates the configuration file, the snapshot root is used when empty.
func (i *injectOptions) run(g *globalOptions, fsys types.FS, projectDir string) (*types.InjectResult, error) {
	logger := logging.GetLogger("inject")
	defer logging.LogOperationStart(logger, "inject")()

	snap, err := project.Load(fsys, i.snapshot)
	if err != nil {
		return nil, err
	}
	if projectDir == "" {
		projectDir = snap.Root
	}

	cfg, err := g.loadConfig(projectDir)
	if err != nil {
		return nil, err
	}

	var module types.Module
	if i.module != "" {
		module, err = snap.Module(i.module)
	} else {
		module, err = snap.ApplicationModule(cfg.Application.Plugin)
	}
	if err != nil {
		return nil, err
	}
	logger.Info().Msgf(MsgUsingModule, module.Name())

	fragmentDir := i.fragmentDir
	if fragmentDir == "" {
		if fragmentDir, err = step.FragmentDir(cfg.Env.FragmentDir); err != nil {
			return nil, err
		}
	}

	return inject.New(fsys, cfg, fragmentDir, logger).Run(module)
}

func newInjectCmd(g *globalOptions) *cobra.Command {
	opts := &injectOptions{}
	cmd := &cobra.Command{
		Use:     "inject",
		Short:   MsgInjectShort,
		Long:    MsgInjectLong,
		Example: MsgInjectExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			result, err := opts.run(g, filesystem.NewOS(), "")
			if result != nil && len(result.Steps) > 0 {
				_ = r.RenderInject(result)
			}
			return err
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func newSetupCmd(g *globalOptions) *cobra.Command {
	opts := &injectOptions{}
	var (
		projectDir    string
		verify        bool
		gradleOptions string
	)
	cmd := &cobra.Command{
		Use:     "setup",
		Short:   MsgSetupShort,
		Long:    MsgSetupLong,
		Example: MsgSetupExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("setup")
			fsys := filesystem.NewOS()
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}

			dir, err := filepath.Abs(projectDir)
			if err != nil {
				return err
			}
			cfg, err := g.loadConfig(dir)
			if err != nil {
				return err
			}

			addons, err := step.NewAddonsConfig(cfg.Addons.Version, cfg.Env.Token)
			if err != nil {
				return err
			}
			path, err := step.WriteAddonsConfig(fsys, dir, cfg.Addons.FileName, addons, logger)
			if err != nil {
				return err
			}
			logger.Info().Msgf(MsgAddonsWritten, path)

			rootBuild, err := project.FindRootBuildFile(fsys, dir)
			if err != nil {
				return err
			}
			logger.Info().Msgf(MsgRootBuildFile, rootBuild)

			result, err := opts.run(g, fsys, dir)
			if result != nil && len(result.Steps) > 0 {
				_ = r.RenderInject(result)
			}
			if err != nil {
				return err
			}

			if !verify {
				return nil
			}
			if !cmd.Flags().Changed("gradle-options") {
				gradleOptions = cfg.Gradle.Options
			}
			logger.Info().Msgf(MsgVerifying, cfg.Gradle.VerifyTask)
			runner := step.NewGradleRunner(cfg.Gradle.Wrapper, cmd.ErrOrStderr(), logging.GetLogger("gradle"))
			if err := runner.Run(cmd.Context(), dir, cfg.Gradle.VerifyTask, gradleOptions); err != nil {
				return err
			}
			return r.RenderMessage("Success", MsgVerifySuccess)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().StringVar(&projectDir, "project", ".", MsgFlagProject)
	cmd.Flags().BoolVar(&verify, "verify", false, MsgFlagVerify)
	cmd.Flags().StringVar(&gradleOptions, "gradle-options", "", MsgFlagGradleOptions)
	_ = cmd.MarkFlagDirname("project")
	return cmd
}

func newStripCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "strip <file>",
		Short:   MsgStripShort,
		Long:    MsgStripLong,
		GroupID: "misc",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDescriptor(args[0])
			if err != nil {
				return err
			}
			masked := comments.MaskText(text)
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			if r.Format() == output.FormatJSON {
				return r.RenderValue("content", masked)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), masked)
			return err
		},
	}
}

func readDescriptor(path string) (string, error) {
	return patch.NewApplier(filesystem.NewOS(), logging.GetLogger("strip")).Read(path)
}

func newDialectCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "dialect <file>...",
		Short:   MsgDialectShort,
		GroupID: "misc",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			for _, path := range args {
				d, err := dialect.ForPath(path)
				if err != nil {
					return err
				}
				if len(args) == 1 {
					err = r.RenderValue("dialect", d.String())
				} else {
					err = r.RenderValue(path, d.String())
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String("gradlepatch"))
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}
