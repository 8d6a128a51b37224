package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/vision/internal/config"
	"github.com/born-ml/vision/internal/datapoints"
)

type resolution struct {
	Functional  string `json:"functional" yaml:"functional"`
	Type        string `json:"type" yaml:"type"`
	Matched     string `json:"matched,omitempty" yaml:"matched,omitempty"`
	Passthrough bool   `json:"passthrough" yaml:"passthrough"`
}

func newResolveCmd(a *app) *cobra.Command {
	var allowPassthrough bool

	cmd := &cobra.Command{
		Use:   "resolve <functional> <type>",
		Short: "Show which kernel a functional dispatches to for a type",
		Example: `  born-vision resolve crop BoundingBoxes
  born-vision resolve invert Mask --passthrough`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}
			t, ok := datapoints.LookupType(args[1])
			if !ok {
				return fmt.Errorf("unknown type %q", args[1])
			}

			res, err := a.registry.Resolve(f, t, allowPassthrough)
			if err != nil {
				a.logger.Debug("resolve failed", zap.String("functional", f.Name()), zap.String("type", t.Name()), zap.Error(err))
				return err
			}

			r := resolution{Functional: f.Name(), Type: t.Name(), Passthrough: res.Passthrough}
			if res.Matched != nil {
				r.Matched = res.Matched.Name()
			}
			if a.cfg.Output.Format != config.FormatTable {
				return a.render(r)
			}
			if r.Passthrough {
				fmt.Fprintf(a.out, "%s(%s) -> passthrough\n", r.Functional, r.Type)
				return nil
			}
			fmt.Fprintf(a.out, "%s(%s) -> kernel registered for %s\n", r.Functional, r.Type, r.Matched)
			return nil
		},
	}
	cmd.Flags().BoolVar(&allowPassthrough, "passthrough", false, "return the identity kernel when no kernel matches")
	return cmd
}
