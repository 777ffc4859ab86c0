package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
	"github.com/heartmarshall/petcare-basedata/internal/service/basedata"
)

type versionRow struct {
	Version    int       `json:"version"`
	Action     string    `json:"action"`
	Type       string    `json:"type,omitempty"`
	Value      string    `json:"value,omitempty"`
	Schema     int       `json:"schema"`
	OperatedBy string    `json:"operatedBy"`
	OperatedAt time.Time `json:"operatedAt"`
	Remark     string    `json:"remark"`
	Corrupt    bool      `json:"corrupt,omitempty"`
}

type logRow struct {
	Action     string    `json:"action"`
	Detail     string    `json:"detail"`
	OperatedBy string    `json:"operatedBy"`
	OperatedAt time.Time `json:"operatedAt"`
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id %q", arg)
	}
	return id, nil
}

func newVersionsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "versions <id>",
		Short: "List the snapshot ledger of a record, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := c.printer(cmd)
			if err != nil {
				return err
			}
			svc, err := c.services(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			versions, err := svc.BaseData.GetVersions(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := make([]versionRow, len(versions))
			rows := make([]table.Row, len(versions))
			for i, v := range versions {
				out[i] = versionRow{
					Version:    v.Version,
					Action:     v.Action.String(),
					Schema:     v.SchemaVersion,
					OperatedBy: v.OperatedBy,
					OperatedAt: v.OperatedAt,
					Remark:     v.Remark,
				}
				if rec, _, err := basedata.DecodeVersion(v); err == nil {
					out[i].Type, out[i].Value = rec.Type, rec.Value
				} else {
					out[i].Corrupt = true
				}
				rows[i] = table.Row{v.Version, out[i].Action, out[i].Type, out[i].Value,
					v.OperatedBy, formatTime(v.OperatedAt), v.Remark}
			}

			return p.print(out,
				table.Row{"Version", "Action", "Type", "Value", "By", "At", "Remark"}, rows)
		},
	}
}

func newLogsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logs <id>",
		Short: "List the audit log of a record, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := c.printer(cmd)
			if err != nil {
				return err
			}
			svc, err := c.services(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			logs, err := svc.BaseData.GetLogs(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := make([]logRow, len(logs))
			rows := make([]table.Row, len(logs))
			for i, l := range logs {
				out[i] = logRow{
					Action:     l.Action.String(),
					Detail:     l.Detail,
					OperatedBy: l.OperatedBy,
					OperatedAt: l.OperatedAt,
				}
				rows[i] = table.Row{out[i].Action, l.OperatedBy, formatTime(l.OperatedAt), l.Detail}
			}

			return p.print(out, table.Row{"Action", "By", "At", "Detail"}, rows)
		},
	}
}

func newRollbackCmd(c *cli) *cobra.Command {
	var (
		version int
		actor   string
	)

	cmd := &cobra.Command{
		Use:   "rollback <id>",
		Short: "Restore a record to the state captured in one of its snapshots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if version <= 0 {
				return fmt.Errorf("--version must be a positive integer")
			}
			p, err := c.printer(cmd)
			if err != nil {
				return err
			}
			svc, err := c.services(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			if actor == "" {
				actor = c.cfg.BaseData.DefaultActor
			}

			rec, err := svc.BaseData.Rollback(cmd.Context(), id, version, actor)
			if err != nil {
				return err
			}

			row := versionRow{
				Version:    rec.Version,
				Action:     domain.BaseDataActionRollback.String(),
				Type:       rec.Type,
				Value:      rec.Value,
				OperatedBy: rec.UpdatedBy,
				OperatedAt: rec.UpdatedAt,
				Remark:     fmt.Sprintf("rolled back to version %d", version),
			}
			return p.print(row,
				table.Row{"ID", "Version", "Type", "Value", "Description", "By"},
				[]table.Row{{rec.ID, rec.Version, rec.Type, rec.Value, rec.Description, rec.UpdatedBy}})
		},
	}

	cmd.Flags().IntVar(&version, "version", 0, "Snapshot version to restore (required)")
	cmd.Flags().StringVar(&actor, "actor", "", "Name recorded as the operator (default: basedata.default_actor)")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}
