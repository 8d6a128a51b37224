package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/vision/internal/config"
	"github.com/born-ml/vision/internal/datapoints"
)

type typeListing struct {
	Name    string   `json:"name" yaml:"name"`
	MRO     []string `json:"mro" yaml:"mro"`
	Fields  []string `json:"fields" yaml:"fields"`
	Builtin bool     `json:"builtin" yaml:"builtin"`
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the tensor and built-in datapoint types",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			all := append([]*datapoints.Type{datapoints.TensorType}, datapoints.BuiltinTypes()...)
			listings := make([]typeListing, 0, len(all))
			for _, t := range all {
				l := typeListing{Name: t.Name(), Fields: t.Fields(), Builtin: datapoints.IsBuiltin(t)}
				for _, anc := range t.MRO() {
					l.MRO = append(l.MRO, anc.Name())
				}
				listings = append(listings, l)
			}

			if a.cfg.Output.Format != config.FormatTable {
				return a.render(listings)
			}
			rows := make([][]string, 0, len(listings))
			for _, l := range listings {
				rows = append(rows, []string{l.Name, strings.Join(l.MRO, " > "), strings.Join(l.Fields, ", ")})
			}
			return a.renderTable([]string{"TYPE", "MRO", "FIELDS"}, rows)
		},
	}
}
