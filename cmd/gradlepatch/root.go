package gradlepatch

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/gradlepatch/internal/version"
	"github.com/arthur-debert/gradlepatch/pkg/cobrax/topics"
	"github.com/arthur-debert/gradlepatch/pkg/config"
	"github.com/arthur-debert/gradlepatch/pkg/errors"
	"github.com/arthur-debert/gradlepatch/pkg/logging"
	"github.com/arthur-debert/gradlepatch/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	format     string
	configFile string
	overrides  []string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&globalOptions{})
}

// Execute runs the command line args with the given output streams. A
// failure is rendered on stderr in the format --format selected. The
// result is the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	opts := &globalOptions{}
	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	opts.renderError(stderr, err)
	return 1
}

func newRootCmd(opts *globalOptions) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "gradlepatch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommandGiven)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringArrayVar(&opts.overrides, "set", nil, MsgFlagSet)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInjectCmd(opts))
	rootCmd.AddCommand(newSetupCmd(opts))
	rootCmd.AddCommand(newStripCmd(opts))
	rootCmd.AddCommand(newDialectCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	sub, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		_, err = topics.Initialize(rootCmd, sub, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// loadConfig builds the configuration for a project directory from the
// persistent flags
func (o *globalOptions) loadConfig(projectDir string) (*config.Config, error) {
	overrides, err := parseOverrides(o.overrides)
	if err != nil {
		return nil, err
	}
	return config.Load(config.LoadOptions{
		ConfigFile: o.configFile,
		ProjectDir: projectDir,
		Overrides:  overrides,
	})
}

// parseOverrides turns key=value pairs into a koanf map
func parseOverrides(pairs []string) (map[string]interface{}, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrParseSet, pair).
				WithDetail("value", pair)
		}
		out[key] = value
	}
	return out, nil
}

// renderer resolves the --format flag for the command's output
func (o *globalOptions) renderer(cmd *cobra.Command) (*output.Renderer, error) {
	return newRenderer(cmd.OutOrStdout(), o.format)
}

// renderError writes err to w. An invalid --format value falls back to
// auto detection, since that value may be the error itself.
func (o *globalOptions) renderError(w io.Writer, err error) {
	r, rerr := newRenderer(w, o.format)
	if rerr != nil {
		r, rerr = newRenderer(w, output.FormatAuto.String())
	}
	if rerr == nil {
		rerr = r.RenderError(err)
	}
	if rerr != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

func newRenderer(w io.Writer, name string) (*output.Renderer, error) {
	format, err := output.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	if format == output.FormatAuto {
		format = output.FormatText
		if f, ok := w.(*os.File); ok {
			format = output.DetectFormat(f)
		}
	}
	return output.NewRenderer(w, format, logging.GetLogger("output"))
}
