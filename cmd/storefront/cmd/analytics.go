package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/gookit/goutil"
	"github.com/spf13/cobra"

	"github.com/proyectoslancha/pattymoda/internal/analytics"
)

func newKPICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kpi",
		Short: "Show the headline KPIs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.analytics.KPIs(cmd.Context())
			if err != nil {
				return err
			}
			if a.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KPI\tVALUE\tCHANGE\tTREND")
			for _, k := range resp.Data.KPIData {
				fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\n", k.Emoji, k.Title, k.Value, k.Change, trendArrow(k.Trend))
			}
			return tw.Flush()
		},
	}
}

func newSegmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "segments",
		Short: "Show customer segments by purchase volume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.analytics.CustomerSegments(cmd.Context())
			if err != nil {
				return err
			}
			if a.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SEGMENT\tCUSTOMERS\tSHARE\tREVENUE")
			for _, s := range resp.Data.CustomerSegments {
				fmt.Fprintf(tw, "%s %s\t%d\t%d%%\t%.2f\n", s.Emoji, s.Segment, s.Count, s.Percentage, s.Revenue)
			}
			return tw.Flush()
		},
	}
}

func newTrendsCmd(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "trends [days]",
		Short: "Show daily sales for a time window",
		Long: `Show sales, orders and customers per day.

The window defaults to 30 days and can be given either as the first argument
or with --days, not both. The value is sent as-is; the backend decides what
is valid.

Examples:
  storefront trends
  storefront trends 7
  storefront trends --days 90`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []analytics.TrendOption
			switch {
			case len(args) == 1 && cmd.Flags().Changed("days"):
				return fmt.Errorf("give the day count either as an argument or with --days, not both")
			case len(args) == 1:
				n, err := goutil.ToInt(args[0])
				if err != nil {
					return fmt.Errorf("invalid day count %q: %w", args[0], err)
				}
				opts = append(opts, analytics.WithDays(n))
			case cmd.Flags().Changed("days"):
				opts = append(opts, analytics.WithDays(days))
			}

			resp, err := a.analytics.SalesTrends(cmd.Context(), opts...)
			if err != nil {
				return err
			}
			if a.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			var totalSales float64
			var totalOrders int64
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tSALES\tORDERS\tCUSTOMERS")
			for _, d := range resp.Data.SalesData {
				fmt.Fprintf(tw, "%s\t%.2f\t%d\t%d\n", d.Date, d.Sales, d.Orders, d.Customers)
				totalSales += d.Sales
				totalOrders += d.Orders
			}
			fmt.Fprintf(tw, "TOTAL\t%.2f\t%d\t\n", totalSales, totalOrders)
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", analytics.DefaultTrendDays, "number of days to cover")
	return cmd
}

func trendArrow(trend string) string {
	switch trend {
	case "up":
		return "↑"
	case "down":
		return "↓"
	default:
		return trend
	}
}
