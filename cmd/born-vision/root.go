package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/vision/internal/config"
	"github.com/born-ml/vision/internal/dispatch"
	"github.com/born-ml/vision/internal/logging"

	// Registers the built-in kernels.
	_ "github.com/born-ml/vision/internal/functional"
)

const version = "v0.1.0-dev"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// app carries the state shared by subcommands.
type app struct {
	out      io.Writer
	cfgFile  string
	format   string
	cfg      config.Config
	logger   *zap.Logger
	registry *dispatch.Registry
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, registry: dispatch.Default(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "born-vision",
		Short:         "Inspect datapoint kernel dispatch",
		Long:          `born-vision lists the functionals, datapoint types and kernels known to the dispatch registry.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (YAML)")
	root.PersistentFlags().StringVarP(&a.format, "format", "o", "", "output format: table, yaml or json")

	root.AddCommand(
		newVersionCmd(a),
		newKernelsCmd(a),
		newTypesCmd(a),
		newResolveCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = a.format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.logger = logger
	a.registry.SetLogger(logger)

	logger.Debug("registry loaded", zap.Int("functionals", len(a.registry.Functionals())))
	return nil
}

// render writes v as YAML or JSON; table output is handled by the caller.
func (a *app) render(v any) error {
	switch a.cfg.Output.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not a structured format", a.cfg.Output.Format)
	}
}

// renderTable writes rows under headers; used for the table output format.
func (a *app) renderTable(headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(a.out, t.Render())
	return err
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.out, "born-vision %s\n", version)
		},
	}
}
