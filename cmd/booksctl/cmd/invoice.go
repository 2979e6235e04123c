package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/firm_books/internal/core/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/SscSPs/firm_books/internal/repositories/memory"
	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/spf13/cobra"
)

var invoiceItems []string

// invoiceCmd represents the invoice command.
var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Compute GST invoice lines and totals",
	Long: `Computes each line's amount including GST and the invoice totals.
Each --item is "name,quantity,rate[,gst]"; quantity defaults to 1 and gst to 18 when empty.

Example:
  booksctl invoice --item "Rice,2,100,5" --item "Oil,,200"`,
	Args: cobra.NoArgs,
	RunE: runInvoice,
}

func init() {
	invoiceCmd.Flags().StringArrayVarP(&invoiceItems, "item", "i", nil, `invoice line as "name,quantity,rate[,gst]" (repeatable)`)
	_ = invoiceCmd.MarkFlagRequired("item")
}

func parseItem(raw string) (dto.InvoiceLineRequest, error) {
	parts := strings.Split(raw, ",")
	if len(parts) < 3 || len(parts) > 4 {
		return dto.InvoiceLineRequest{}, fmt.Errorf("item %q: want name,quantity,rate[,gst]", raw)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" {
		return dto.InvoiceLineRequest{}, fmt.Errorf("item %q: name is required", raw)
	}
	line := dto.InvoiceLineRequest{
		Name:     parts[0],
		Quantity: utils.NumericField(parts[1]),
		Rate:     utils.NumericField(parts[2]),
	}
	if len(parts) == 4 {
		line.GSTPercent = utils.NumericField(parts[3])
	}
	return line, nil
}

func runInvoice(cmd *cobra.Command, args []string) error {
	req := dto.InvoiceLinesRequest{}
	for _, raw := range invoiceItems {
		line, err := parseItem(raw)
		if err != nil {
			return err
		}
		req.Items = append(req.Items, line)
	}

	container, err := services.NewServiceContainer(cfg, memory.NewRepositoryProvider())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	resp, err := container.Invoice.PreviewInvoice(ctx, req)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), resp)
}
