package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yourname/sleeplog/internal/service"
)

func newLogCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "log SLEEP WAKE",
		Short: "Log a new sleep entry",
		Long: `Log a new sleep entry. Both times use the format "YYYY-MM-DD HH:MM", e.g.

  sleeplog log "2024-01-01 23:00" "2024-01-02 07:00"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// both times are parsed before the store is opened
			sleep, err := service.ParseTimestamp(args[0])
			if err != nil {
				return err
			}
			wake, err := service.ParseTimestamp(args[1])
			if err != nil {
				return err
			}

			entry, err := service.LogSleep(cmd.Context(), d.repo, &service.SleepLogRequest{
				SleepTime: sleep,
				WakeTime:  wake,
			})
			if err != nil {
				return err
			}
			d.logger.Infof("logged entry to %s", d.repo.Path())

			fmt.Fprintf(cmd.OutOrStdout(), "Logged: slept at %s, woke at %s (%.2fh)\n",
				entry.SleepTime.Format(service.InputLayout),
				entry.WakeTime.Format(service.InputLayout),
				entry.DurationHours)
			return nil
		},
	}
}
