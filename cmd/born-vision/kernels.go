package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/vision/internal/config"
)

type kernelListing struct {
	Functional string   `json:"functional" yaml:"functional"`
	Types      []string `json:"types" yaml:"types"`
}

func newKernelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List functionals and the types they have kernels for",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			listings := make([]kernelListing, 0)
			for _, f := range a.registry.Functionals() {
				l := kernelListing{Functional: f.Name(), Types: []string{}}
				for _, t := range a.registry.RegisteredTypes(f) {
					l.Types = append(l.Types, t.Name())
				}
				listings = append(listings, l)
			}

			if a.cfg.Output.Format != config.FormatTable {
				return a.render(listings)
			}
			rows := make([][]string, 0, len(listings))
			for _, l := range listings {
				rows = append(rows, []string{l.Functional, strings.Join(l.Types, ", ")})
			}
			return a.renderTable([]string{"FUNCTIONAL", "TYPES"}, rows)
		},
	}
}
