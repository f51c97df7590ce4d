// Package cli implements the provhash command line interface: a thin caller
// around pkg/provhash that decodes documents, hashes directory trees, and
// watches trees for changes. Commands receive their dependencies through a
// Deps struct so tests can inject streams, loggers, and config.
package cli

import (
	"io"
	"log/slog"

	"github.com/provenlab/provhash/pkg/log"
	"github.com/provenlab/provhash/pkg/provhash"
	"github.com/spf13/cobra"
)

// Version is the build-time version. Override with:
//
//	-ldflags "-X github.com/provenlab/provhash/pkg/cli.Version=v1.2.3"
var Version = "dev"

// Deps holds injectable dependencies for commands.
type Deps struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Logger *slog.Logger
	Config *UserConfig

	flags rootFlags
}

type rootFlags struct {
	cfgFile   string
	precision int
	verbose   bool
	debug     bool
	logJSON   bool
}

// NewRootCmd builds the root command and wires up subcommands. A nil deps
// gets production defaults: OS streams, user config from the default path,
// and a stderr logger.
func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}

	root := &cobra.Command{
		Use:   "provhash",
		Short: "provhash — canonical content fingerprints for computation inputs",
		Long: `provhash computes deterministic, order-independent content digests for
JSON/YAML documents and directory trees. Equal content always yields the
same 64-character hex digest, making the output usable as a caching or
provenance key.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Config == nil {
				cfg, err := ReadUserConfig(deps.flags.cfgFile)
				if err != nil {
					return err
				}
				deps.Config = cfg
			}

			if deps.Logger == nil {
				level := slog.LevelWarn
				if deps.flags.verbose {
					level = slog.LevelInfo
				}
				if deps.flags.debug {
					level = slog.LevelDebug
				}
				deps.Logger = log.New(log.Config{
					Out:   cmd.ErrOrStderr(),
					Level: level,
					JSON:  deps.flags.logJSON || deps.Config.LogJSON,
				})
			}
			cmd.SetContext(log.WithContext(cmd.Context(), deps.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	if deps.In != nil {
		root.SetIn(deps.In)
	}
	if deps.Out != nil {
		root.SetOut(deps.Out)
	}
	if deps.Err != nil {
		root.SetErr(deps.Err)
	}

	root.PersistentFlags().StringVar(
		&deps.flags.cfgFile,
		"config",
		"",
		"config file (default: $XDG_CONFIG_HOME/provhash/config.yaml)",
	)
	root.PersistentFlags().IntVar(
		&deps.flags.precision,
		"precision",
		0,
		"significant digits for float canonicalization (default 12)",
	)
	root.PersistentFlags().BoolVarP(
		&deps.flags.verbose,
		"verbose",
		"v",
		false,
		"enable verbose output",
	)
	root.PersistentFlags().BoolVarP(
		&deps.flags.debug,
		"debug",
		"d",
		false,
		"enable debug output",
	)
	root.PersistentFlags().BoolVar(
		&deps.flags.logJSON,
		"log-json",
		false,
		"log in JSON format",
	)

	root.AddCommand(newHashCmd(deps))
	root.AddCommand(newDirCmd(deps))
	root.AddCommand(newWatchCmd(deps))

	return root
}

// hashOptions folds config and flags into hasher options. Flag values win
// over config values; extra ignore names accumulate with configured ones.
func (d *Deps) hashOptions(extraIgnore ...string) []provhash.Option {
	var opts []provhash.Option

	precision := d.flags.precision
	if precision <= 0 && d.Config != nil {
		precision = d.Config.FloatPrecision
	}
	if precision > 0 {
		opts = append(opts, provhash.WithFloatPrecision(precision))
	}

	var ignore []string
	if d.Config != nil {
		ignore = append(ignore, d.Config.IgnoreNames...)
	}
	ignore = append(ignore, extraIgnore...)
	if len(ignore) > 0 {
		opts = append(opts, provhash.WithFolderIgnore(ignore...))
	}
	return opts
}
