package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendo-dev/spendo/internal/insights"
	"github.com/spendo-dev/spendo/internal/lifecycle"
)

func newInsightsCommand(open openAppFunc) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Regenerate insights from cached transactions",
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

			feed := a.engine.Analyze(txns)
			if all {
				notes := insights.HabitualMerchantNotes(insights.CalculateMerchantStats(txns))
				feed = append(feed, a.lifecycle.FilterVisible(notes)...)
			}
			printInsights(feed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include habitual-merchant notes")
	return cmd
}

func newAckCommand(open openAppFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "ack <insight-id>",
		Short: "Acknowledge an insight so it stops appearing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.lifecycle.Save(args[0], lifecycle.StatusAcknowledged, nil); err != nil {
				return err
			}
			fmt.Printf("Acknowledged %s\n", args[0])
			return nil
		},
	}
}

func newSnoozeCommand(open openAppFunc) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "snooze <insight-id>",
		Short: "Snooze an insight for a while",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			horizon := days
			if horizon <= 0 {
				horizon = a.cfg.SnoozeDays
			}
			if err := a.lifecycle.SnoozeFor(args[0], horizon); err != nil {
				return err
			}
			fmt.Printf("Snoozed %s for %d days\n", args[0], horizon)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "snooze horizon in days (default from config)")
	return cmd
}

func newHideCommand(open openAppFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "hide <insight-id>",
		Short: "Hide an insight permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.lifecycle.Save(args[0], lifecycle.StatusHidden, nil); err != nil {
				return err
			}
			fmt.Printf("Hidden %s\n", args[0])
			return nil
		},
	}
}
