package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dr-Dre420/unlostai/internal/assessment"
	"github.com/Dr-Dre420/unlostai/internal/catalog"
	"github.com/Dr-Dre420/unlostai/internal/filtering"
	"github.com/Dr-Dre420/unlostai/internal/logger"
	"github.com/Dr-Dre420/unlostai/internal/ranking"
	"github.com/Dr-Dre420/unlostai/internal/view"
)

const (
	PromptNext             = "Next →"
	PromptPrevious         = "← Previous"
	PromptGenerate         = "Get Career Recommendations"
	PromptLearningPath     = "Start learning path"
	PromptReportByLocation = "Report by location"
	PromptDumpToFile       = "Dump recommendations to file"
	PromptStartOver        = "Start over"
	PromptExit             = "Exit"
	PromptBack             = "back"
)

var (
	errExit      = errors.New("exit requested")
	errStartOver = errors.New("start over requested")
)

var menu = promptui.Select{
	Label: "What next?",
	Items: []string{PromptLearningPath, PromptReportByLocation, PromptDumpToFile, PromptStartOver, PromptExit},
}

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run the interactive skills assessment and get career recommendations",
	PreRun: func(cmd *cobra.Command, _ []string) {
		bindFilterFlags(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		assess(cmd)
	},
}

func init() {
	rootCmd.AddCommand(assessCmd)

	assessCmd.Flags().BoolP("auto", "y", false, "print recommendations and exit without showing the menu")
	addFilterFlags(assessCmd)
}

func assess(cmd *cobra.Command) {
	log, config, c := bootstrap()
	out := cmd.OutOrStdout()

	store := assessment.New(c, log)
	ctx := assessment.NewContext(context.Background(), store)
	log = logger.WithSession(log, store.SessionID())

	log.Info("starting the assessment", zap.String("version", version))

	ranker := ranking.NewRanker(c.Careers, log)
	steps := prepareFilters(cmd, log)
	auto := cmd.Flag("auto").Value.String() == "true"

	for {
		if err := runWizard(ctx, out); err != nil {
			if errors.Is(err, errExit) {
				log.Info("exiting", zap.String("reason", "assessment cancelled"))
				return
			}
			log.Fatal("running the assessment", zap.Error(err))
		}

		recs, err := recommend(ctx, ranker, filterConfig(config), filtering.Deps{Logger: log}, steps)
		if err != nil {
			log.Fatal("ranking careers", zap.Error(err))
		}

		fmt.Fprintln(out, view.Recommendations(recs))

		if auto {
			return
		}

		err = showMenu(ctx, out, recs, config, log)
		switch {
		case errors.Is(err, errStartOver):
			store.ResetAssessment()
			log.Info("starting over")
		case errors.Is(err, errExit):
			return
		case err != nil:
			log.Fatal("exiting", zap.Error(err))
		}
	}
}

// runWizard walks the stored assessment through every category until it is
// completed or the user exits.
func runWizard(ctx context.Context, out io.Writer) error {
	store, err := assessment.FromContext(ctx)
	if err != nil {
		return err
	}

	w := assessment.NewWizard(store)
	for {
		fmt.Fprintln(out, view.Checklist(w))

		category := w.CurrentCategory()
		items := wizardItems(w, category)

		prompt := promptui.Select{
			Label: "Toggle a skill or choose an action",
			Items: items,
			Size:  len(items),
		}

		idx, choice, err := prompt.Run()
		if err != nil {
			return err
		}

		if idx < len(category.Skills) {
			store.ToggleSkill(category.Skills[idx].ID)
			continue
		}

		switch choice {
		case PromptNext:
			fmt.Fprintln(out, view.Notice(w.Next()))
		case PromptPrevious:
			w.Previous()
		case PromptGenerate:
			fmt.Fprintln(out, view.Notice(w.Finish()))
			if store.Complete() {
				return nil
			}
		case PromptExit:
			return errExit
		}
	}
}

func wizardItems(w *assessment.Wizard, category catalog.Category) []string {
	store := w.Store()

	items := make([]string, 0, len(category.Skills)+3)
	for _, skill := range category.Skills {
		mark := "[ ]"
		if store.IsSelected(skill.ID) {
			mark = "[x]"
		}
		items = append(items, fmt.Sprintf("%s %s", mark, skill.Name))
	}

	if w.CanGoBack() {
		items = append(items, PromptPrevious)
	}
	if w.IsLastStep() {
		items = append(items, PromptGenerate)
	} else {
		items = append(items, PromptNext)
	}

	return append(items, PromptExit)
}

// recommend ranks the stored selection and runs the configured filters.
func recommend(ctx context.Context, ranker *ranking.Ranker, cfg *filtering.Config, deps filtering.Deps, steps []filtering.Filter) (*ranking.Recommendations, error) {
	store, err := assessment.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	recs := ranker.Rank(store.Selected())
	return filtering.Run(ctx, cfg, deps, steps, recs)
}

func showMenu(ctx context.Context, out io.Writer, recs *ranking.Recommendations, config *Config, log *zap.Logger) error {
	for {
		_, action, err := menu.Run()
		if err != nil {
			return err
		}

		if err := handleAction(ctx, action, out, recs, config, log); err != nil {
			return err
		}
	}
}

func handleAction(ctx context.Context, action string, out io.Writer, recs *ranking.Recommendations, config *Config, log *zap.Logger) error {
	switch action {
	case PromptLearningPath:
		learningPath(ctx, out, recs, config, log)
		return nil
	case PromptReportByLocation:
		pretty, _ := json.MarshalIndent(recs.ReportByLocation(), "", "  ")
		log.Info(string(pretty), zap.Int("careers count", recs.Len()))
		return nil
	case PromptDumpToFile:
		filename, err := recs.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump recommendations to file: %w", err)
		}
		log.Info("dumping recommendations to file", zap.String("filename", filename))
		return nil
	case PromptStartOver:
		return errStartOver
	case PromptExit:
		log.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// learningPath asks the advisor for a plan towards one recommended career.
// Advisor failures are logged and never end the session.
func learningPath(ctx context.Context, out io.Writer, recs *ranking.Recommendations, config *Config, log *zap.Logger) {
	if recs.Len() == 0 {
		log.Warn("no careers to plan for")
		return
	}

	planner, err := newPlanner(ctx, config.Advisor, log)
	if err != nil {
		log.Warn("learning path is unavailable", zap.Error(err))
		return
	}

	store, err := assessment.FromContext(ctx)
	if err != nil {
		log.Error("learning path", zap.Error(err))
		return
	}

	careerPrompt := promptui.Select{
		Label: "Choose a career and press ENTER",
		Items: append(recs.Titles(), PromptBack),
	}

	idx, choice, err := careerPrompt.Run()
	if err != nil || choice == PromptBack {
		return
	}

	rec := &recs.Items[idx]
	clog := log.With(zap.String(logger.FieldCareer, rec.ID))
	clog.Info("drafting a learning plan")

	plan, err := planner.Plan(ctx, rec, store.Catalog().SkillNames(store.Selected()))
	if err != nil {
		clog.Error("drafting a learning plan", zap.Error(err))
		return
	}

	fmt.Fprintln(out, view.LearningPlan(rec.Title, plan))
}
