package main

import (
	"fmt"

	"carekiosk/internal/content"

	"github.com/spf13/cobra"
)

// checkCmd validates a content manifest before it is handed to the kiosk.
var checkCmd = &cobra.Command{
	Use:   "check [manifest]",
	Short: "Validate a content manifest",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := contentPath
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path = cfg.Content
		}

		m, err := content.Load(path)
		if err != nil {
			return fmt.Errorf("manifest invalid: %w", err)
		}
		fmt.Printf("%s: OK\n", path)
		fmt.Printf("  services: %d (tags: %d)\n", len(m.Services), len(m.TagUniverse()))
		fmt.Printf("  faq:      %d\n", len(m.FAQ))
		fmt.Printf("  tabs:     %d\n", len(m.Tabs))
		if len(m.Services) == 0 {
			fmt.Println("  note: services section is empty and will be skipped")
		}
		if len(m.FAQ) == 0 {
			fmt.Println("  note: faq section is empty and will be skipped")
		}
		if len(m.Tabs) == 0 {
			fmt.Println("  note: tabs section is empty and will be skipped")
		}
		return nil
	},
}
