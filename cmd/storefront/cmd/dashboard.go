package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.dashboard.Stats(cmd.Context())
			if err != nil {
				return err
			}
			if a.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			s := resp.Data
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Products:  %d total, %d active, %d low stock\n", s.TotalProducts, s.ActiveProducts, s.LowStockProducts)
			fmt.Fprintf(out, "Customers: %d total, %d active\n", s.TotalCustomers, s.ActiveCustomers)
			fmt.Fprintf(out, "Month:     %.2f revenue over %d sales\n", s.MonthlyRevenue, s.MonthlySales)
			fmt.Fprintf(out, "Today:     %.2f revenue over %d sales\n", s.DailyRevenue, s.DailySales)
			fmt.Fprintf(out, "Users:     %d\n", s.TotalUsers)
			return nil
		},
	}
}

func newActivityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show the recent activity feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.dashboard.RecentActivity(cmd.Context())
			if err != nil {
				return err
			}
			if a.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			out := cmd.OutOrStdout()
			if len(resp.Data.Activities) == 0 {
				fmt.Fprintln(out, "No recent activity")
			} else {
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "PRIORITY\tTYPE\tWHEN\tMESSAGE")
				for _, act := range resp.Data.Activities {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", act.Priority, act.Type, act.Time, act.Message)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "\nLast update: %s\n", resp.Data.LastUpdate)
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
