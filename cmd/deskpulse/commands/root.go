package commands

import (
	"net/http"

	"deskpulse/internal/assistant"
	"deskpulse/internal/config"
	"deskpulse/internal/insights"
	"deskpulse/internal/logging"
	"deskpulse/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig

	tickets   *store.Store
	generator insights.Generator
)

var rootCmd = &cobra.Command{
	Use:   "deskpulse",
	Short: "Deskpulse is a helpdesk analytics engine with an LLM assistant surface",
	Long: `Deskpulse ingests spreadsheet exports of support tickets, normalizes their
schemas, derives dashboard and per-agent metrics, and exposes the results both
on the command line and as tools for an LLM assistant over stdio.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		tickets = store.New()
		cache := insights.NewMemoryCache()
		tickets.OnReplace(cache.InvalidateAll)

		if err := tickets.Load(cfg.TicketsFile); err != nil {
			log.Warn().Err(err).Msg("Failed to load persisted tickets, starting empty")
		}

		generator = insights.Cached{Generator: newGenerator(), Cache: cache}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Int("tickets", tickets.Count()).
			Msg("Deskpulse starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("Assistant server starting stdio loop")
		server := assistant.NewServer(tickets, generator, cfg.TicketsFile)
		if err := server.Serve(); err != nil {
			log.Fatal().Err(err).Msg("Assistant server failed")
		}
	},
}

func newGenerator() insights.Generator {
	if !cfg.EnableInsights || cfg.InsightsBaseURL == "" {
		return insights.MockGenerator{ModelVersion: "mock-" + Version}
	}
	return insights.HTTPGenerator{
		BaseURL: cfg.InsightsBaseURL,
		APIKey:  cfg.InsightsAPIKey,
		Model:   cfg.InsightsModel,
		Client:  &http.Client{Timeout: cfg.InsightsTimeout},
	}
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
