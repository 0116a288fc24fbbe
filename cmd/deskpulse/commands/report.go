package commands

import (
	"fmt"
	"time"

	"deskpulse/internal/stats"

	"github.com/spf13/cobra"
)

var reportRange string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the dashboard overview and trends against the previous period",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, err := stats.ParseRange(reportRange)
		if err != nil {
			return err
		}

		now := time.Now()
		all := tickets.All()
		current := stats.Aggregate(stats.FilterByRange(all, rng, now))
		previous := stats.Aggregate(stats.PreviousPeriod(all, rng, now))
		trends := stats.CompareOverview(current, previous)

		fmt.Printf("Range: %s\n\n", rng)
		fmt.Printf("Total tickets:      %d (%s)\n", current.Total, trends.Total.Change)
		fmt.Printf("Open tickets:       %d (%s)\n", current.Open, trends.Open.Change)
		fmt.Printf("Closed tickets:     %d\n", current.Closed)
		fmt.Printf("Avg resolution:     %.2f h (%s)\n", current.AvgResolutionHours, trends.ResolutionHours.Change)
		fmt.Printf("Avg rating:         %.2f (%s)\n", current.AvgRating, trends.Rating.Change)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportRange, "range", "all", "time range: all, last-7-days, last-30-days, this-month, last-month")
	rootCmd.AddCommand(reportCmd)
}
