// Package rootcmd wires the root cobra.Command for the todo binary.
package rootcmd

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/buildinfo"
	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/store/memstore"
	"github.com/Makepad-fr/tada/internal/ui"
)

type flags struct {
	configPath string
	theme      string
	logLevel   string
	exportDir  string
	view       string
}

// New creates the root command. It takes no arguments: running it
// starts the interactive menu; flags only tune configuration.
func New() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "todo",
		Short:         "tada - an interactive todo list",
		Version:       buildinfo.Version + " (" + buildinfo.GitCommit + ")",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	fl := root.Flags()
	fl.StringVar(&f.configPath, "config", "", "Path to a TOML config file (default: $TADA_CONFIG, then ./tada.toml)")
	fl.StringVar(&f.theme, "theme", config.DefaultTheme, "Color theme: classic | neon | mono")
	fl.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "Log level: debug | info | warn | error")
	fl.StringVar(&f.exportDir, "export-dir", config.DefaultExportDir, "Directory receiving exported todo files")
	fl.StringVar(&f.view, "view", config.DefaultView, "View mode: plain | browse")

	return root
}

// loadConfig layers flags that were set explicitly over file and env values.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	fl := cmd.Flags()
	if fl.Changed("theme") {
		cfg.Theme = f.theme
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fl.Changed("export-dir") {
		cfg.ExportDir = f.exportDir
	}
	if fl.Changed("view") {
		cfg.View = f.view
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(in io.Reader, out, errOut io.Writer, cfg *config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(errOut, log.Options{
		Level:  level,
		Prefix: "tada",
	})
	ui.SetTheme(cfg.Theme)

	logger.Debug("starting", "version", buildinfo.Version, "export_dir", cfg.ExportDir, "view", cfg.View)
	app := cli.New(memstore.New(), in, out, errOut, logger, cli.Options{
		ExportDir: cfg.ExportDir,
		View:      cfg.View,
	})
	return app.Run()
}
