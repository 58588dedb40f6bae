package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yourname/sleeplog/internal"
	"github.com/yourname/sleeplog/internal/service"
)

const (
	noHistoryNotice = "No sleep data found. Start logging first."
	noAdviceNotice  = "No data to analyze yet."
)

func newHistoryCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View the most recent sleep logs and their average",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := d.window(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			sum, err := service.History(cmd.Context(), d.repo, window)
			if errors.Is(err, internal.ErrEmptyHistory) {
				fmt.Fprintln(out, noHistoryNotice)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Sleep history (last %d logs):\n", sum.Window)
			for _, e := range sum.Entries {
				fmt.Fprintf(out, " - Slept %s -> Woke %s | %.2fh\n", e.SleepTime, e.WakeTime, e.DurationHours)
			}
			fmt.Fprintf(out, "\nAverage sleep (last %d nights): %.2fh\n", len(sum.Entries), sum.Average)
			return nil
		},
	}
	addWindowFlag(cmd, d)
	return cmd
}

func newAdviceCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advice",
		Short: "Get sleep advice based on recent history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := d.window(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			adv, err := service.Advise(cmd.Context(), d.repo, window)
			if errors.Is(err, internal.ErrEmptyHistory) {
				fmt.Fprintln(out, noAdviceNotice)
				return nil
			}
			if err != nil {
				return err
			}
			d.logger.Debugf("advice: average %.2fh over %d entries -> %s", adv.Average, adv.Count, adv.Category)

			fmt.Fprintln(out, "Sleep advice:")
			fmt.Fprintf(out, " - %s\n", adv.Text)
			return nil
		},
	}
	addWindowFlag(cmd, d)
	return cmd
}
