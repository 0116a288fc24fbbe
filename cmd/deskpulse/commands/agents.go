package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"deskpulse/internal/stats"

	"github.com/spf13/cobra"
)

var agentsRange string

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Show the per-agent workload rollup",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, err := stats.ParseRange(agentsRange)
		if err != nil {
			return err
		}

		population := stats.FilterByRange(tickets.All(), rng, time.Now())
		rollup := stats.AgentRollup(population)
		if len(rollup) == 0 {
			fmt.Println("No assigned tickets in range", rng)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "AGENT\tTOTAL\tACTIVE\tAVG RATING\tAVG RESOLUTION (H)")
		for _, a := range rollup {
			fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%.2f\n",
				a.Email, a.TotalTickets, a.ActiveTickets, a.AvgRating, a.AvgResolutionHours)
		}
		return w.Flush()
	},
}

func init() {
	agentsCmd.Flags().StringVar(&agentsRange, "range", "all", "time range: all, last-7-days, last-30-days, this-month, last-month")
	rootCmd.AddCommand(agentsCmd)
}
