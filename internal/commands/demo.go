package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendo-dev/spendo/internal/demo"
)

func newDemoCommand(open openAppFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Load the demo data set and generate insights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := open(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			txns := demo.Transactions()
			if err := a.store.CreateTransactions(ctx, txns); err != nil {
				return fmt.Errorf("storing demo transactions: %w", err)
			}
			if err := a.cache.Save(txns); err != nil {
				return fmt.Errorf("caching demo transactions: %w", err)
			}

			feed := a.engine.Analyze(txns)
			if err := a.store.CreateInsights(ctx, feed); err != nil {
				return fmt.Errorf("storing insights: %w", err)
			}

			fmt.Printf("Loaded %d demo transactions\n", len(txns))
			printInsights(feed)
			return nil
		},
	}
}
