package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Dr-Dre420/unlostai/internal/filtering"
)

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Int("minimum-score", 0, "drop careers scoring below this match percentage")
	cmd.Flags().Bool("trending-only", false, "keep only trending careers")
	cmd.Flags().StringSlice("location", nil, "keep only careers offered in these locations")
	cmd.Flags().StringSlice("exclude-career", nil, "career ids to leave out")
	cmd.Flags().StringSlice("disable-filter", nil, "filter steps to skip (exclude_careers, minimum_score, trending, locations)")
}

// bindFilterFlags binds the flags of the command being run. Binding happens
// at run time because several commands share the same keys.
func bindFilterFlags(cmd *cobra.Command) {
	viper.BindPFlag("recommendations.minimum-score", cmd.Flags().Lookup("minimum-score"))
	viper.BindPFlag("recommendations.trending-only", cmd.Flags().Lookup("trending-only"))
	viper.BindPFlag("recommendations.locations", cmd.Flags().Lookup("location"))
	viper.BindPFlag("recommendations.exclude-careers", cmd.Flags().Lookup("exclude-career"))
}

func prepareFilters(cmd *cobra.Command, log *zap.Logger) []filtering.Filter {
	steps := filtering.Default()

	if cmd != nil {
		if names, err := cmd.Flags().GetStringSlice("disable-filter"); err == nil {
			for _, name := range names {
				filtering.DisableByName(steps, name, "disabled by --disable-filter flag")
			}
		}
	}

	for _, status := range filtering.Describe(steps) {
		if !status.Enabled {
			log.Info("filter disabled", zap.String("name", status.Name), zap.String("reason", status.Reason))
		}
	}

	return steps
}
