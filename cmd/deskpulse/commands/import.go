package commands

import (
	"errors"
	"fmt"

	"deskpulse/internal/ingest"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a spreadsheet export (.xlsx, .xlsm or .csv) of support tickets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		rows, err := ingest.ReadFile(path)
		if err != nil {
			return err
		}

		built, err := ingest.BuildTickets(rows)
		if err != nil {
			if errors.Is(err, ingest.ErrEmptyFile) {
				return fmt.Errorf("%s: the file has no data rows", path)
			}
			if errors.Is(err, ingest.ErrNoTickets) {
				return fmt.Errorf("%s: no usable ticket rows found", path)
			}
			return err
		}

		tickets.Replace(built)
		if err := tickets.Save(cfg.TicketsFile); err != nil {
			return err
		}

		log.Info().Int("rows", len(rows)).Int("tickets", len(built)).Msg("Import complete")
		fmt.Printf("Imported %d tickets from %d rows\n", len(built), len(rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
