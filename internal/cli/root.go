// Package cli implements the aiscore command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aiscore/internal/aidetect"
	"aiscore/internal/config"
	"aiscore/internal/db"
	"aiscore/internal/logging"
	"aiscore/internal/workspace"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type rootOptions struct {
	configPath string
	logLevel   string
	dbPath     string
}

// app carries what PersistentPreRunE initialised down to the subcommands.
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	workspace string
}

func (a *app) newEngine() *aidetect.Engine {
	return aidetect.NewEngine(
		aidetect.WithWeights(a.cfg.Weights),
		aidetect.WithLogger(logging.Stage(a.log)),
	)
}

func (a *app) openStore() (*db.Store, error) {
	store, err := db.OpenStore(a.cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", a.cfg.Storage.Path, err)
	}
	return store, nil
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	a := &app{}

	cmd := &cobra.Command{
		Use:   "aiscore",
		Short: "Estimate how likely a text is machine-generated",
		Long: "aiscore scores prose for AI-likelihood from five statistical signals:\n" +
			"word predictability, sentence-length variation, entropy, stylometry\n" +
			"and formulaic marker density.",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (default: ~/AIScore/configs/config.yaml)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.dbPath, "db", "", "history database path")

	cmd.AddCommand(
		newAnalyzeCmd(a),
		newHistoryCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// init ensures the workspace, loads config and builds the logger. Flags
// override config values.
func (a *app) init(cmd *cobra.Command, opts *rootOptions) error {
	root, err := workspace.EnsureDefault()
	if err != nil {
		return fmt.Errorf("workspace: %w", err)
	}
	a.workspace = root

	path := opts.configPath
	if path == "" {
		path = workspace.ConfigPath(root)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if cmd.Flags().Changed("db") {
		cfg.Storage.Path = opts.dbPath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.cfg = cfg

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
