package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

type dictRow struct {
	ValueCode string         `json:"valueCode"`
	ValueName string         `json:"valueName"`
	Order     int            `json:"order"`
	ExtraData map[string]any `json:"extraData,omitempty"`
	Version   int            `json:"version"`
}

func newDictCmd(c *cli) *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:   "dict <code>",
		Short: "List the enabled values of a dictionary",
		Example: "  basedatactl dict pet_species\n" +
			"  basedatactl dict pet_breed --parent dog",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.printer(cmd)
			if err != nil {
				return err
			}
			svc, err := c.services(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			var vals []*domain.DictValue
			if parent != "" {
				vals, err = svc.Dictionary.GetValuesByParent(cmd.Context(), args[0], parent)
			} else {
				vals, err = svc.Dictionary.GetValues(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			out := make([]dictRow, len(vals))
			rows := make([]table.Row, len(vals))
			for i, v := range vals {
				out[i] = dictRow{
					ValueCode: v.ValueCode,
					ValueName: v.ValueName,
					Order:     v.Order,
					ExtraData: v.ExtraData,
					Version:   v.Version,
				}
				rows[i] = table.Row{v.Order, v.ValueCode, v.ValueName, extraString(v.ExtraData)}
			}

			return p.print(out, table.Row{"Order", "Code", "Name", "Extra"}, rows)
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Parent value code for cascade lookups (e.g. dog)")

	return cmd
}

func extraString(extra map[string]any) string {
	if len(extra) == 0 {
		return ""
	}
	parts := make([]string, 0, len(extra))
	for k, v := range extra {
		parts = append(parts, k+"="+fmt.Sprint(v))
	}
	slices.Sort(parts)
	return strings.Join(parts, " ")
}
