package options

import (
	"github.com/spf13/cobra"
)

// EventOptions carries the fields of an event create or edit.
type EventOptions struct {
	Title       string
	Description string
	Start       string
	End         string
	TypeID      string
	OrderID     string
	OrderNumber string
	Client      string
	Supplier    string
	Amount      float64
	Reminders   []string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Event title.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Event description.")
	cmd.Flags().StringVar(&o.Start, "start", "",
		"Start date (YYYY-MM-DD).")
	cmd.Flags().StringVar(&o.End, "end", "",
		"End date (YYYY-MM-DD, defaults to the start date).")
	cmd.Flags().StringVar(&o.TypeID, "type", "",
		"Event type id.")
	cmd.Flags().StringVar(&o.OrderID, "order", "",
		"Link the event to an order id.")
	cmd.Flags().StringSliceVar(&o.Reminders, "remind", nil,
		"Reminder as DATE:TITLE, repeatable.")
}

// AddDocumentArgs registers the structured fields of document events.
func AddDocumentArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.OrderNumber, "order-number", "",
		"Document order number.")
	cmd.Flags().StringVar(&o.Client, "client", "",
		"Client name on the document.")
	cmd.Flags().StringVar(&o.Supplier, "supplier", "",
		"Supplier name on the document.")
	cmd.Flags().Float64Var(&o.Amount, "amount", 0,
		"Document amount in euros.")
}
