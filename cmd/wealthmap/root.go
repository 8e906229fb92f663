package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wealthmap/household-projection/internal/calculation"
	"github.com/wealthmap/household-projection/internal/config"
	"github.com/wealthmap/household-projection/internal/domain"
	"github.com/wealthmap/household-projection/internal/logger"
	"github.com/wealthmap/household-projection/internal/output"
	"github.com/wealthmap/household-projection/internal/server"
)

// app carries the settings shared by every subcommand. Environment
// settings seed the flag defaults.
type app struct {
	settings  config.Settings
	overrides []string
	targetAge int
	log       *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	settings, settingsErr := config.LoadSettings()
	a.settings = settings

	root := &cobra.Command{
		Use:           "wealthmap",
		Short:         "Project household net worth and free cash year by year",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if settingsErr != nil {
				return settingsErr
			}
			log, err := logger.New(a.settings.LogLevel)
			if err != nil {
				return err
			}
			a.log = log
			cmd.SetContext(logger.WithContext(cmd.Context(), log))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.settings.ConfigFile, "config", "c", settings.ConfigFile, "configuration file (YAML or JSON); defaults are used when empty")
	pf.StringArrayVar(&a.overrides, "set", nil, "override a parameter, e.g. --set primary_return=8 (repeatable)")
	pf.StringVar(&a.settings.LogLevel, "log-level", settings.LogLevel, "log level (debug, info, warn, error)")
	pf.BoolVar(&a.settings.Debug, "debug", settings.Debug, "log every projected year")

	root.AddCommand(
		a.projectCmd(),
		a.queryCmd(),
		a.exampleConfigCmd(),
		a.serveCmd(),
		a.formatsCmd(),
	)
	return root
}

// loadConfiguration reads the configuration file, if any, and applies
// the --set overrides.
func (a *app) loadConfiguration() (domain.Configuration, error) {
	parser := config.NewInputParser()
	cfg := domain.DefaultConfiguration()
	if a.settings.ConfigFile != "" {
		loaded, err := parser.LoadFromFile(a.settings.ConfigFile)
		if err != nil {
			return domain.Configuration{}, err
		}
		cfg = *loaded
	}
	if len(a.overrides) == 0 {
		return cfg, nil
	}
	overrides, err := config.ParseOverrides(a.overrides)
	if err != nil {
		return domain.Configuration{}, err
	}
	return parser.ApplyOverrides(cfg, overrides)
}

func (a *app) project(cfg domain.Configuration) domain.Projection {
	engine := calculation.NewProjectionEngine()
	engine.Debug = a.settings.Debug
	engine.SetLogger(a.log)
	return engine.Project(cfg)
}

func (a *app) projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run the projection and render a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration()
			if err != nil {
				return err
			}
			report := output.NewReport(cfg, a.project(cfg), a.targetAge)
			format := a.settings.Format

			if a.settings.OutputDir == "" && !writesFiles(format) {
				f, err := output.LookupFormatter(format)
				if err != nil {
					return err
				}
				data, err := f.Format(report)
				if err != nil {
					return fmt.Errorf("format %s: %w", f.Name(), err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			dir := a.settings.OutputDir
			if dir == "" {
				dir = "."
			}
			paths, err := output.GenerateReport(report, format, dir)
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", p)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&a.settings.Format, "format", "f", a.settings.Format, "report format ("+joinNames()+", or all)")
	cmd.Flags().StringVarP(&a.settings.OutputDir, "output-dir", "o", a.settings.OutputDir, "write the report to a timestamped file in this directory")
	cmd.Flags().IntVar(&a.targetAge, "age", output.DefaultTargetAge, "age the summary cards focus on")
	return cmd
}

// writesFiles reports whether a format cannot sensibly go to stdout.
func writesFiles(format string) bool {
	n := output.NormalizeFormatName(format)
	return n == "all" || n == "pdf"
}

func (a *app) queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Show the breakdowns for a single age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration()
			if err != nil {
				return err
			}
			p := a.project(cfg)
			if _, ok := p.At(a.targetAge); !ok {
				return fmt.Errorf("age %d is outside the projection (%d-%d)", a.targetAge, cfg.CurrentAge, cfg.EndAge)
			}
			data, err := output.CardFormatter{}.Format(output.NewReport(cfg, p, a.targetAge))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().IntVar(&a.targetAge, "age", output.DefaultTargetAge, "age to look up")
	_ = cmd.MarkFlagRequired("age")
	return cmd
}

func (a *app) exampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write the default configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "wealthmap.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), filename); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", filename)
			return nil
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve projections over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, a.log).ListenAndServe(ctx, a.settings.ListenAddr)
		},
	}
	cmd.Flags().StringVar(&a.settings.ListenAddr, "addr", a.settings.ListenAddr, "listen address")
	return cmd
}

func (a *app) formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats and aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(out, "  %-12s .%s\n", name, output.GetFormatterByName(name).Extension())
			}
			fmt.Fprintln(out, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(out, "  %-16s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
		},
	}
}

func joinNames() string {
	return strings.Join(output.AvailableFormatterNames(), ", ")
}
