// Package cli implements the measure command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xraph/measure/internal/config"
)

// App holds the state shared by all commands of one invocation.
type App struct {
	cfg    config.Config
	viper  *viper.Viper
	logger *slog.Logger

	out    io.Writer
	errOut io.Writer

	cfgFile string
}

// Option configures an App.
type Option func(*App)

// WithOutput sets the writer results are printed to.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithErrOutput sets the writer logs and errors are printed to.
func WithErrOutput(w io.Writer) Option {
	return func(a *App) { a.errOut = w }
}

// WithLogger sets the logger. When set, log_level from the configuration
// is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithViper sets the viper instance configuration is loaded into.
func WithViper(v *viper.Viper) Option {
	return func(a *App) { a.viper = v }
}

// New creates an App writing to stdout and stderr.
func New(opts ...Option) *App {
	a := &App{
		cfg:    config.Defaults(),
		viper:  viper.New(),
		out:    os.Stdout,
		errOut: os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Command builds the root command.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "measure",
		Short: "Convert and compute typed physical quantities",
		Long: `measure converts quantities between units and evaluates arithmetic on
them. Supported dimensions are length, area, volume, mass, time and
velocity. Quantities are written as a number followed by a unit
abbreviation, e.g. 3km, 2.5 m², 50min, 90km/h.

Negative quantities must follow "--" so they are not read as flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	flags.StringP("output", "o", config.OutputText, "output format: text, json or yaml")
	flags.Int("precision", -1, "decimals in text output (negative = shortest)")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")

	for key, flag := range map[string]string{
		"output":    "output",
		"precision": "precision",
		"log_level": "log-level",
	} {
		cobra.CheckErr(a.viper.BindPFlag(key, flags.Lookup(flag)))
	}

	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.AddCommand(
		a.convertCommand(),
		a.calcCommand(),
		a.sumCommand(),
		a.unitsCommand(),
		a.opsCommand(),
	)

	return root
}

// Execute runs the command tree with args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.Command()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.viper, a.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	if a.logger == nil {
		level, err := cfg.SlogLevel()
		if err != nil {
			return err
		}
		a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	}

	a.logger.Debug("config loaded",
		"command", cmd.Name(),
		"file", a.cfgFile,
		"output", cfg.Output,
		"precision", cfg.Precision,
	)
	return nil
}
