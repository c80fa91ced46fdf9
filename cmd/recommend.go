package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dr-Dre420/unlostai/internal/assessment"
	"github.com/Dr-Dre420/unlostai/internal/filtering"
	"github.com/Dr-Dre420/unlostai/internal/logger"
	"github.com/Dr-Dre420/unlostai/internal/ranking"
	"github.com/Dr-Dre420/unlostai/internal/utils"
	"github.com/Dr-Dre420/unlostai/internal/view"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank careers for a comma separated list of skills without the interactive wizard",
	PreRun: func(cmd *cobra.Command, _ []string) {
		bindFilterFlags(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		recommendSkills(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("skills", "s", "", "comma separated skill ids or names, e.g. programming,communication")
	recommendCmd.Flags().Bool("output-json", false, "print recommendations as json")
	addFilterFlags(recommendCmd)
}

func recommendSkills(cmd *cobra.Command) {
	log, config, c := bootstrap()
	out := cmd.OutOrStdout()

	store := assessment.New(c, log)
	ctx := assessment.NewContext(context.Background(), store)
	log = logger.WithSession(log, store.SessionID())

	selectSkills(store, utils.SplitList(cmd.Flag("skills").Value.String()))

	if err := store.CompleteAssessment(); err != nil {
		log.Info("no skills given, every career gets the default score", zap.Error(err))
	}

	ranker := ranking.NewRanker(c.Careers, log)
	recs, err := recommend(ctx, ranker, filterConfig(config), filtering.Deps{Logger: log}, prepareFilters(cmd, log))
	if err != nil {
		log.Fatal("ranking careers", zap.Error(err))
	}

	if cmd.Flag("output-json").Value.String() == "true" {
		pretty, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			log.Fatal("encoding recommendations", zap.Error(err))
		}
		fmt.Fprintln(out, string(pretty))
		return
	}

	fmt.Fprintln(out, view.Recommendations(recs))
}

// selectSkills adds every skill to the selection. Repeated entries stay
// selected instead of toggling back off.
func selectSkills(store *assessment.Store, skills []string) {
	for _, skill := range skills {
		if store.IsSelected(strings.TrimSpace(skill)) {
			continue
		}
		store.ToggleSkill(skill)
	}
}
