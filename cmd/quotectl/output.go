package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jsamuelsen/event-quote-service/internal/app"
	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func rupees(amount string) string {
	return "₹" + amount
}

func writePlan(w io.Writer, eventType domain.EventType, plan app.Plan) error {
	fmt.Fprintf(w, "%s: %d services, %s season\n\n", eventType.DisplayName(), len(plan.Recommendations), plan.Season)

	tw := newTable(w)
	fmt.Fprintln(tw, "PRIORITY\tSERVICE\tCATEGORY\tQTY\tESTIMATE")

	for _, r := range plan.Recommendations {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			r.Priority.DisplayName(), r.Service.Name, r.Service.Category.DisplayName(),
			r.SuggestedQuantity, rupees(r.EstimatedCost.StringFixed(2)))
	}

	fmt.Fprintf(tw, "\t\t\tTOTAL\t%s\n", rupees(plan.Total.StringFixed(2)))

	if err := tw.Flush(); err != nil {
		return err
	}

	if opt := plan.Optimization; opt != nil && opt.Trimmed {
		fmt.Fprintf(w, "\nTrimmed from %s to fit %s, %d services dropped, %s left\n",
			rupees(opt.OriginalTotal.StringFixed(2)), rupees(opt.Target.StringFixed(2)),
			len(opt.Dropped), rupees(opt.Remaining.StringFixed(2)))
	}

	if len(plan.Tips) > 0 {
		fmt.Fprintln(w, "\nTips:")

		for _, tip := range plan.Tips {
			fmt.Fprintf(w, "  - %s\n", tip)
		}
	}

	return nil
}

func writeServices(w io.Writer, services []domain.ServiceItem) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "SERVICE\tCATEGORY\tPRICE\tUNIT\tTRADITIONAL")

	for _, s := range services {
		traditional := ""
		if s.Traditional {
			traditional = "yes"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			s.Name, s.Category.DisplayName(), rupees(s.BasePrice.StringFixed(2)), s.Unit, traditional)
	}

	return tw.Flush()
}

func writeTotals(w io.Writer, out totalsOutput) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "FILE\tCLIENT\tITEMS\tSUBTOTAL\tDISCOUNT\tTAX\tGRAND TOTAL")

	for _, r := range out.Quotations {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			r.File, r.Client, r.Items,
			r.Totals.Subtotal.StringFixed(2),
			r.Totals.DiscountAmount.StringFixed(2),
			r.Totals.TaxAmount.StringFixed(2),
			r.Totals.GrandTotal.StringFixed(2))
	}

	fmt.Fprintf(tw, "\t\t\t\t\tTOTAL\t%s\n", out.GrandTotal.StringFixed(2))

	return tw.Flush()
}
