package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/searchprov/internal/domain/mode"
	"github.com/kailas-cloud/searchprov/internal/usecase/provision"
)

// planField is the printable form of one schema field.
type planField struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Key        bool   `json:"key,omitempty"`
	Filterable bool   `json:"filterable,omitempty"`
}

// planSource is the printable form of one data-source indexer.
type planSource struct {
	Kind       string `json:"kind"`
	DataSource string `json:"dataSource"`
	Container  string `json:"container"`
	Indexer    string `json:"indexer"`
}

type planOutput struct {
	Mode    string       `json:"mode"`
	Index   string       `json:"index"`
	Fields  []planField  `json:"fields"`
	Sources []planSource `json:"sources"`
}

func newPlanCmd(g *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print what provision would create, without calling the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, m, err := loadSettings(g)
			if err != nil {
				return err
			}
			out, err := buildPlan(m, settingsFrom(cfg))
			if err != nil {
				return err
			}
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			return writePlan(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the plan as JSON")

	return cmd
}

// buildPlan resolves the mode plan. Sources whose settings are missing are
// still listed, by their indexer name only.
func buildPlan(m mode.Mode, s provision.Settings) (planOutput, error) {
	plan, err := mode.PlanFor(m)
	if err != nil {
		return planOutput{}, err
	}

	out := planOutput{Mode: string(plan.Mode), Index: plan.IndexName}
	for _, f := range plan.Schema {
		out.Fields = append(out.Fields, planField{
			Name:       f.Name(),
			Type:       string(f.FieldType()),
			Key:        f.IsKey(),
			Filterable: f.IsFilterable(),
		})
	}
	for _, kind := range plan.Sources {
		ps := planSource{Kind: string(kind)}
		if src, err := provision.SourceFor(kind, s, plan.IndexName); err == nil {
			ps.DataSource = src.DataSource.Name()
			ps.Container = src.DataSource.Container()
			ps.Indexer = src.Indexer.Name()
		} else {
			ps.Indexer = fallbackIndexerName(kind)
		}
		out.Sources = append(out.Sources, ps)
	}
	return out, nil
}

func fallbackIndexerName(kind mode.Source) string {
	switch kind {
	case mode.SourceCosmos:
		return provision.CosmosIndexerName
	case mode.SourceBlob:
		return provision.BlobIndexerName
	}
	return ""
}

func writePlan(w io.Writer, out planOutput) error {
	if _, err := fmt.Fprintf(w, "Mode:  %s\nIndex: %s\n\n", out.Mode, out.Index); err != nil {
		return err
	}

	fields := tablewriter.NewWriter(w)
	fields.Header("Field", "Type", "Attributes")
	for _, f := range out.Fields {
		var attrs []string
		if f.Key {
			attrs = append(attrs, "key")
		}
		if f.Filterable {
			attrs = append(attrs, "filterable")
		}
		if err := fields.Append(f.Name, f.Type, strings.Join(attrs, ",")); err != nil {
			return err
		}
	}
	if err := fields.Render(); err != nil {
		return err
	}

	sources := tablewriter.NewWriter(w)
	sources.Header("Source", "Data source", "Container", "Indexer")
	for _, s := range out.Sources {
		if err := sources.Append(s.Kind, orDash(s.DataSource), orDash(s.Container), s.Indexer); err != nil {
			return err
		}
	}
	return sources.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
