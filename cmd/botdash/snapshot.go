package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"botdash/internal/api"
	"botdash/internal/logging"
	"botdash/internal/state"
	"botdash/internal/ui"
	"botdash/internal/view"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Snapshot output formats.
const (
	formatView = "view"
	formatYAML = "yaml"
	formatJSON = "json"
)

type snapshotFlags struct {
	tab    string
	width  int
	format string
}

// snapshotDoc is the machine-readable snapshot. Absent resources are null and
// their fetch error is listed under errors.
type snapshotDoc struct {
	Tab       string                 `json:"tab"`
	Stats     *api.StatsSnapshot     `json:"stats"`
	Users     *api.UsersResponse     `json:"users"`
	Referrals *api.ReferralsResponse `json:"referrals"`
	Errors    map[string]string      `json:"errors,omitempty"`
}

func newSnapshotCmd(global *globalFlags) *cobra.Command {
	var flags snapshotFlags

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Load every resource once, print it and exit",
		Long: `snapshot fetches stats, users and referrals concurrently, waits for all
three to settle and prints the selected tab as the dashboard would show it.
With --format yaml or json it prints the fetched data instead.

The command fails only when no resource could be loaded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, global, &flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.tab, "tab", state.TabOverview.String(), "tab to render (overview, users, referrals, activity)")
	f.IntVar(&flags.width, "width", 100, "render width in columns")
	f.StringVarP(&flags.format, "format", "o", formatView, "output format (view, yaml, json)")
	return cmd
}

func runSnapshot(cmd *cobra.Command, global *globalFlags, flags *snapshotFlags) error {
	tab, err := state.ParseTab(flags.tab)
	if err != nil {
		return err
	}
	switch flags.format {
	case formatView, formatYAML, formatJSON:
	default:
		return fmt.Errorf("unknown format %q (want view, yaml or json)", flags.format)
	}

	cfg, err := loadConfig(cmd, global)
	if err != nil {
		return err
	}
	_, cleanup, err := logging.Setup(cfg.Log.Level, logging.Stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	b := newClient(cfg)
	d := state.NewDashboard(b)
	d.Apply(state.TabSelected{Tab: tab})
	loaded := ui.LoadOnce(b, d, nil)

	errs := map[string]string{}
	for _, ev := range loaded {
		if ev.Err != nil {
			errs[ev.Resource.String()] = ev.Err.Error()
		}
	}

	if err := writeSnapshot(cmd.OutOrStdout(), d.Snapshot(), errs, flags); err != nil {
		return err
	}
	if len(errs) == len(state.Resources()) {
		return fmt.Errorf("backend %s unreachable: no resource loaded", cfg.BackendURL)
	}
	return nil
}

func writeSnapshot(w io.Writer, snap state.Snapshot, errs map[string]string, flags *snapshotFlags) error {
	if flags.format == formatView {
		_, err := fmt.Fprintln(w, view.Build(snap).Render(flags.width))
		return err
	}

	doc := snapshotDoc{
		Tab:       snap.Tab.String(),
		Stats:     snap.Stats,
		Users:     snap.Users,
		Referrals: snap.Referrals,
	}
	if len(errs) > 0 {
		doc.Errors = errs
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if flags.format == formatJSON {
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	return writeYAML(w, data)
}

// writeYAML re-encodes a JSON document as block-style YAML, keeping the JSON
// field names and order.
func writeYAML(w io.Writer, jsonDoc []byte) error {
	var node yaml.Node
	if err := yaml.Unmarshal(jsonDoc, &node); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	blockStyle(&node)

	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
