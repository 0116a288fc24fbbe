package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all imported tickets and the persisted copy on disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		tickets.Reset()
		if err := tickets.Save(cfg.TicketsFile); err != nil {
			return err
		}
		fmt.Println("All ticket data cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
