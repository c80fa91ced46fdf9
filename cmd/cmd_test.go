package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Dr-Dre420/unlostai/internal/assessment"
	"github.com/Dr-Dre420/unlostai/internal/catalog"
	"github.com/Dr-Dre420/unlostai/internal/filtering"
	"github.com/Dr-Dre420/unlostai/internal/ranking"
)

func newSession(t *testing.T, skills ...string) (context.Context, *assessment.Store, *ranking.Ranker) {
	t.Helper()

	c, err := catalog.Default()
	require.NoError(t, err)

	store := assessment.New(c, zap.NewNop())
	for _, skill := range skills {
		store.ToggleSkill(skill)
	}

	return assessment.NewContext(context.Background(), store), store, ranking.NewRanker(c.Careers, zap.NewNop())
}

func TestGetConfigFromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("catalog-file", "custom.yaml")
	viper.Set("recommendations.minimum-score", 65)
	viper.Set("recommendations.trending-only", true)
	viper.Set("recommendations.locations", []string{"Pune"})
	viper.Set("advisor.enabled", true)
	viper.Set("advisor.gemini.model", "gemini-2.5-pro")

	config, err := getConfig()
	require.NoError(t, err)

	assert.Equal(t, "custom.yaml", config.CatalogFile)
	require.NotNil(t, config.Recommendations)
	assert.Equal(t, &filtering.Config{
		MinimumScore: 65,
		TrendingOnly: true,
		Locations:    []string{"Pune"},
	}, filterConfig(config))

	require.NotNil(t, config.Advisor)
	assert.True(t, config.Advisor.Enabled)
	require.NotNil(t, config.Advisor.Gemini)
	assert.Equal(t, "gemini-2.5-pro", config.Advisor.Gemini.Model)
}

func TestGetConfigEmpty(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	config, err := getConfig()
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, &filtering.Config{}, filterConfig(config))
	assert.Equal(t, &filtering.Config{}, filterConfig(nil))
}

func TestLoadCatalog(t *testing.T) {
	c, err := loadCatalog("")
	require.NoError(t, err)
	assert.Len(t, c.Careers, 4)

	_, err = loadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRecommendUsesStoredSelection(t *testing.T) {
	ctx, _, ranker := newSession(t, "communication")

	recs, err := recommend(ctx, ranker, &filtering.Config{MinimumScore: 65}, filtering.Deps{}, filtering.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{"product-manager"}, recs.IDs())

	_, err = recommend(context.Background(), ranker, &filtering.Config{}, filtering.Deps{}, filtering.Default())
	assert.ErrorIs(t, err, assessment.ErrStoreNotInitialized)
}

func TestPrepareFiltersDisablesByFlag(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	cmd := &cobra.Command{Use: "test"}
	addFilterFlags(cmd)
	require.NoError(t, cmd.Flags().Set("disable-filter", "minimum_score,trending"))

	statuses := filtering.Describe(prepareFilters(cmd, zap.New(core)))
	require.Len(t, statuses, 4)
	assert.True(t, statuses[0].Enabled)
	assert.False(t, statuses[1].Enabled)
	assert.False(t, statuses[2].Enabled)
	assert.True(t, statuses[3].Enabled)
	assert.Equal(t, 2, observed.FilterMessage("filter disabled").Len())

	assert.Len(t, prepareFilters(nil, zap.NewNop()), 4)
}

func TestWizardItems(t *testing.T) {
	_, store, _ := newSession(t, "programming")
	w := assessment.NewWizard(store)

	assert.Equal(t, []string{
		"[x] Programming",
		"[ ] Data Analysis",
		"[ ] AI & Machine Learning",
		PromptNext,
		PromptExit,
	}, wizardItems(w, w.CurrentCategory()))

	w.Next()
	items := wizardItems(w, w.CurrentCategory())
	assert.Equal(t, []string{PromptPrevious, PromptGenerate, PromptExit}, items[3:])
}

func TestHandleAction(t *testing.T) {
	ctx, store, ranker := newSession(t, "react")
	recs := ranker.Rank(store.Selected())

	core, observed := observer.New(zapcore.InfoLevel)
	log := zap.New(core)
	var out bytes.Buffer

	require.NoError(t, handleAction(ctx, PromptReportByLocation, &out, recs, &Config{}, log))
	assert.Equal(t, 1, observed.FilterField(zap.Int("careers count", 4)).Len())

	require.NoError(t, handleAction(ctx, PromptDumpToFile, &out, recs, &Config{}, log))
	dumped := observed.FilterMessage("dumping recommendations to file").All()
	require.Len(t, dumped, 1)
	filename := dumped[0].ContextMap()["filename"].(string)
	t.Cleanup(func() { os.Remove(filename) })
	assert.FileExists(t, filename)

	assert.ErrorIs(t, handleAction(ctx, PromptStartOver, &out, recs, &Config{}, log), errStartOver)
	assert.ErrorIs(t, handleAction(ctx, PromptExit, &out, recs, &Config{}, log), errExit)
	assert.Error(t, handleAction(ctx, "unknown", &out, recs, &Config{}, log))
}

func TestLearningPathWithoutAdvisor(t *testing.T) {
	ctx, store, ranker := newSession(t, "python")
	recs := ranker.Rank(store.Selected())

	core, observed := observer.New(zapcore.InfoLevel)
	var out bytes.Buffer

	require.NoError(t, handleAction(ctx, PromptLearningPath, &out, recs, &Config{}, zap.New(core)))
	assert.Empty(t, out.String())

	warned := observed.FilterMessage("learning path is unavailable").All()
	require.Len(t, warned, 1)
	assert.Contains(t, warned[0].ContextMap()["error"], errAdvisorDisabled.Error())
}

func TestNewPlannerErrors(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := newPlanner(context.Background(), nil, zap.NewNop())
	assert.ErrorIs(t, err, errAdvisorDisabled)

	_, err = newPlanner(context.Background(), &AdvisorConfig{Enabled: true, Provider: "openai"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported advisor provider")

	_, err = newPlanner(context.Background(), &AdvisorConfig{Enabled: true}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY_FILE")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "unlostai version: unknown\n", out.String())
}

func TestSelectSkillsKeepsRepeatedEntriesSelected(t *testing.T) {
	_, store, _ := newSession(t)

	selectSkills(store, []string{"programming", "programming", " communication", "communication "})
	assert.Equal(t, []string{"communication", "programming"}, store.Selected())
}

func TestRecommendCommandWithRepeatedSkill(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"recommend", "--skills", "communication,communication", "--output-json"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		recommendCmd.Flags().Set("skills", "")
		recommendCmd.Flags().Set("output-json", "false")
	})

	require.NoError(t, rootCmd.Execute())

	var recs ranking.Recommendations
	require.NoError(t, json.Unmarshal(out.Bytes(), &recs))
	require.Equal(t, 4, recs.Len())
	assert.Equal(t, "product-manager", recs.Items[0].ID)
	assert.Equal(t, 69, recs.Items[0].MatchScore)
	assert.Equal(t, []string{"Communication"}, recs.Items[0].Matched)
}
