package main

import (
	"fmt"

	"carekiosk/internal/analytics"

	"github.com/spf13/cobra"
)

var eventsTail int

// eventsCmd gives external tooling (and curious humans) the analytics log
// without any extra API: it just reads the JSONL sink back.
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print recent analytics events",
	Long: `Reads the append-only analytics sink from the data directory and
prints the newest records, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		events, err := analytics.SinkTail(cfg.AnalyticsSinkPath(), eventsTail)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No events recorded.")
			return nil
		}
		for _, ev := range events {
			fmt.Printf("%s  %-20s session=%s", ev.Timestamp.Format("2006-01-02 15:04:05.000"), ev.Type, shortSession(ev.Session))
			for k, v := range ev.Payload {
				fmt.Printf(" %s=%v", k, v)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	eventsCmd.Flags().IntVarP(&eventsTail, "tail", "n", 20, "number of events to print")
}

func shortSession(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
