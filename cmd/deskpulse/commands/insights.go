package commands

import (
	"context"
	"fmt"
	"time"

	"deskpulse/internal/insights"
	"deskpulse/internal/stats"

	"github.com/spf13/cobra"
)

var insightsRange string

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate a narrative insight for a time range",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, err := stats.ParseRange(insightsRange)
		if err != nil {
			return err
		}

		req := insights.BuildRequest(tickets.All(), rng, time.Now())
		ins, err := generator.Generate(context.Background(), req)
		if err != nil {
			return fmt.Errorf("insight generation failed: %w", err)
		}

		fmt.Printf("[%s, %s]\n%s\n", ins.Model, rng, ins.Narrative)
		return nil
	},
}

func init() {
	insightsCmd.Flags().StringVar(&insightsRange, "range", "all", "time range: all, last-7-days, last-30-days, this-month, last-month")
	rootCmd.AddCommand(insightsCmd)
}
