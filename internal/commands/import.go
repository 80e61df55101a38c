package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spendo-dev/spendo/internal/model"
)

func newImportCommand(open openAppFunc) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <statement.csv>",
		Short: "Import a bank statement CSV and generate insights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := open(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			result, err := a.engine.ImportCSV(ctx, string(data))
			if err != nil {
				return err
			}

			merged := result.Transactions
			if !replace {
				merged = mergeTransactions(a.cache.Load(), result.Transactions)
			}
			if err := a.cache.Save(merged); err != nil {
				return fmt.Errorf("caching transactions: %w", err)
			}

			fmt.Printf("Imported %d transactions (%d total)\n", len(result.Transactions), len(merged))
			printInsights(result.Insights)
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "replace cached transactions instead of merging")
	return cmd
}

// mergeTransactions appends new rows to the existing collection, skipping
// ids already present.
func mergeTransactions(existing, incoming []model.Transaction) []model.Transaction {
	seen := make(map[string]struct{}, len(existing))
	for _, tx := range existing {
		seen[tx.ID] = struct{}{}
	}
	merged := existing
	for _, tx := range incoming {
		if _, ok := seen[tx.ID]; ok {
			continue
		}
		merged = append(merged, tx)
	}
	return merged
}

func printInsights(insights []model.Insight) {
	if len(insights) == 0 {
		fmt.Println("No new insights.")
		return
	}
	fmt.Printf("%d insight(s):\n", len(insights))
	for _, ins := range insights {
		fmt.Printf("  [%s] %s\n", ins.Severity, ins.Message)
		if ins.Detail != "" {
			fmt.Printf("         %s\n", ins.Detail)
		}
		fmt.Printf("         id: %s\n", ins.ID)
	}
}
