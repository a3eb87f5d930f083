package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/truestock/truestock/internal/adapters/outbound/tui"
	"github.com/truestock/truestock/internal/application"
)

// mutation runs op against the session catalog and, on success, prints msg
// followed by the refreshed catalog. Engine errors are returned untouched.
func mutation(s *session, msg string, op func(svc *application.InventoryService, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, err := s.service(cmd)
		if err != nil {
			return err
		}
		if err := op(svc, args); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, tui.RenderSuccess(msg))
		fmt.Fprint(out, tui.RenderCatalog(svc.List(), svc.Currency()))
		return nil
	}
}

// positional stops flag parsing at the first argument, so a negative
// quantity or price reaches the engine as a value. Flags go before the
// arguments.
func positional(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newAddCmd(s *session) *cobra.Command {
	return positional(&cobra.Command{
		Use:   "add ID CATEGORY NAME PRICE QUANTITY",
		Short: "Add a product",
		Long:  "Add a product. The ID is stored upper-cased and the category capitalized. Price and quantity must be positive.",
		Args:  cobra.ExactArgs(5),
		RunE: mutation(s, tui.MsgAdded, func(svc *application.InventoryService, args []string) error {
			_, err := svc.AddProduct(args[0], args[1], args[2], args[3], args[4])
			return err
		}),
	})
}

func newRemoveCmd(s *session) *cobra.Command {
	return positional(&cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a product",
		Args:    cobra.ExactArgs(1),
		RunE: mutation(s, tui.MsgRemoved, func(svc *application.InventoryService, args []string) error {
			return svc.RemoveProduct(args[0])
		}),
	})
}

func newRestockCmd(s *session) *cobra.Command {
	return positional(&cobra.Command{
		Use:   "restock ID QUANTITY",
		Short: "Add units to a product's stock",
		Args:  cobra.ExactArgs(2),
		RunE: mutation(s, tui.MsgRestocked, func(svc *application.InventoryService, args []string) error {
			_, err := svc.RestockProduct(args[0], args[1])
			return err
		}),
	})
}

func newReserveCmd(s *session) *cobra.Command {
	return positional(&cobra.Command{
		Use:   "reserve ID QUANTITY",
		Short: "Take units out of a product's stock",
		Long:  "Reserve units of a product. The request is rejected whole when the stock is short.",
		Args:  cobra.ExactArgs(2),
		RunE: mutation(s, tui.MsgReserved, func(svc *application.InventoryService, args []string) error {
			_, err := svc.ReserveProduct(args[0], args[1])
			return err
		}),
	})
}
