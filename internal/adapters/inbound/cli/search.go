package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/truestock/truestock/internal/adapters/outbound/export"
	"github.com/truestock/truestock/internal/adapters/outbound/tui"
	"github.com/truestock/truestock/internal/domain"
)

func newSearchCmd(s *session) *cobra.Command {
	var (
		name       string
		category   string
		jsonOutput bool
		csvOutput  bool
	)

	cmd := &cobra.Command{
		Use:     "search",
		Aliases: []string{"list", "ls"},
		Short:   "List products, optionally filtered",
		Long:    "List the catalog. --name and --category keep only products whose name or category contains the given text, ignoring case.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := s.service(cmd)
			if err != nil {
				return err
			}

			products := svc.Search(name, category)
			out := cmd.OutOrStdout()

			switch {
			case jsonOutput:
				return renderJSON(cmd, products)
			case csvOutput:
				return export.WriteCSV(out, products)
			}

			filtered := strings.TrimSpace(name) != "" || strings.TrimSpace(category) != ""
			if filtered && len(products) == 0 {
				fmt.Fprint(out, tui.RenderNoMatch())
				return nil
			}
			fmt.Fprint(out, tui.RenderCatalog(products, svc.Currency()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Keep products whose name contains this text")
	cmd.Flags().StringVar(&category, "category", "", "Keep products whose category contains this text")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output products as JSON")
	cmd.Flags().BoolVar(&csvOutput, "csv", false, "Output products as CSV")
	cmd.MarkFlagsMutuallyExclusive("json", "csv")

	return cmd
}

func renderJSON(cmd *cobra.Command, products []domain.Product) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(products)
}
