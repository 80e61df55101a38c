package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spendo-dev/spendo/internal/insights"
)

func newStatsCommand(open openAppFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-merchant spending stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			txns := a.cache.Load()
			if len(txns) == 0 {
				fmt.Println("No transactions yet. Run 'spendo import' or 'spendo demo' first.")
				return nil
			}

			stats := insights.CalculateMerchantStats(txns)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MERCHANT\tTOTAL\tCOUNT\tAVG")
			for _, s := range stats {
				fmt.Fprintf(w, "%s\t$%.2f\t%d\t$%.2f\n",
					s.Merchant, s.TotalSpent, s.TransactionCount, s.AverageSpend)
			}
			return w.Flush()
		},
	}
}
