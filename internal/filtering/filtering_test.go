package filtering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Dr-Dre420/unlostai/internal/catalog"
	"github.com/Dr-Dre420/unlostai/internal/ranking"
)

func rankDefault(t *testing.T, selected ...string) *ranking.Recommendations {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return ranking.Rank(selected, c.Careers)
}

type countingFilter struct {
	toggle
	steps []Step
}

func (f *countingFilter) Name() string { return "counting" }
func (f *countingFilter) Validate(*Config) error { return nil }
func (f *countingFilter) Apply(_ context.Context, _ Deps, r *ranking.Recommendations) (*ranking.Recommendations, Step, error) {
	step := Step{Initial: r.Len(), Left: r.Len()}
	f.steps = append(f.steps, step)
	return r, step, nil
}

func TestRunWithEmptyConfigKeepsEverything(t *testing.T) {
	recs := rankDefault(t, "communication")

	out, err := Run(context.Background(), &Config{}, Deps{}, Default(), recs)
	require.NoError(t, err)
	assert.Equal(t, []string{"product-manager", "ai-engineer", "fullstack-developer", "ui-ux-designer"}, out.IDs())
}

func TestRunAppliesAllSteps(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	recs := rankDefault(t, "communication", "react")

	cfg := &Config{
		MinimumScore:   65,
		Locations:      []string{" bangalore "},
		ExcludeCareers: []string{"ui-ux-designer"},
	}

	out, err := Run(context.Background(), cfg, Deps{Logger: zap.New(core)}, Default(), recs)
	require.NoError(t, err)
	assert.Equal(t, []string{"fullstack-developer", "product-manager"}, out.IDs())

	assert.Equal(t, 1, observed.FilterMessage("excluding careers from config").Len())
	assert.Equal(t, 1, observed.FilterMessage("dropping careers below minimum score").Len())
	assert.Equal(t, 0, observed.FilterMessage("dropping careers outside of requested locations").Len())
}

func TestRunTrendingAndLocations(t *testing.T) {
	recs := rankDefault(t)

	out, err := Run(context.Background(), &Config{TrendingOnly: true, Locations: []string{"Mumbai"}}, Deps{}, Default(), recs)
	require.NoError(t, err)
	assert.Equal(t, []string{"ai-engineer", "product-manager"}, out.IDs())

	out, err = Run(context.Background(), &Config{Locations: []string{"Pune"}}, Deps{}, Default(), rankDefault(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"fullstack-developer"}, out.IDs())
}

func TestRunRejectsInvalidMinimumScore(t *testing.T) {
	_, err := Run(context.Background(), &Config{MinimumScore: 120}, Deps{}, Default(), rankDefault(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minimum_score")
}

func TestDisableByNameSkipsStep(t *testing.T) {
	steps := Default()
	DisableByName(steps, "minimum_score", "disabled by flag")

	out, err := Run(context.Background(), &Config{MinimumScore: 120}, Deps{}, steps, rankDefault(t))
	require.NoError(t, err, "disabled steps are not validated")
	assert.Equal(t, 4, out.Len())

	statuses := Describe(steps)
	require.Len(t, statuses, 4)
	assert.Equal(t, "minimum_score", statuses[1].Name)
	assert.False(t, statuses[1].Enabled)
	assert.Equal(t, "disabled by flag", statuses[1].Reason)
}

func TestDescribeFallsBackWithoutStatus(t *testing.T) {
	counting := &countingFilter{}

	_, err := Run(context.Background(), nil, Deps{}, []Filter{counting}, rankDefault(t))
	require.NoError(t, err)
	assert.Equal(t, []Step{{Initial: 4, Left: 4}}, counting.steps)

	statuses := Describe([]Filter{counting})
	assert.Equal(t, []Status{{Name: "counting", Enabled: true}}, statuses)
}

func TestStatusDetails(t *testing.T) {
	steps := Default()
	cfg := &Config{MinimumScore: 70, TrendingOnly: true, Locations: []string{"Pune", "Mumbai"}, ExcludeCareers: []string{"a", "b"}}
	_, err := Run(context.Background(), cfg, Deps{}, steps, rankDefault(t))
	require.NoError(t, err)

	statuses := Describe(steps)
	assert.Equal(t, "a,b", statuses[0].Details["careers"])
	assert.Equal(t, "70", statuses[1].Details["minimum_score"])
	assert.Equal(t, "true", statuses[2].Details["trending_only"])
	assert.Equal(t, "Pune,Mumbai", statuses[3].Details["locations"])
}
