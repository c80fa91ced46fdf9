package ranking

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationsExcludePreservesOrder(t *testing.T) {
	ranked := Rank([]string{"communication"}, defaultCareers(t))

	dropped := ranked.Exclude([]string{" ai-engineer ", "astronaut"})
	assert.Equal(t, []string{"ai-engineer"}, dropped)
	assert.Equal(t, []string{"product-manager", "fullstack-developer", "ui-ux-designer"}, ranked.IDs())

	assert.Nil(t, ranked.Exclude(nil))
	assert.Equal(t, 3, ranked.Len())
}

func TestRecommendationsLookups(t *testing.T) {
	ranked := Rank(nil, defaultCareers(t))

	rec := ranked.FindByID("ui-ux-designer")
	require.NotNil(t, rec)
	assert.Equal(t, "UI/UX Designer", rec.Title)
	assert.Equal(t, 3, rec.Stars())

	assert.Nil(t, ranked.FindByID("astronaut"))
	assert.Equal(t, []string{"AI/ML Engineer", "Full Stack Developer", "Product Manager", "UI/UX Designer"}, ranked.Titles())
}

func TestRecommendationsReportByLocation(t *testing.T) {
	ranked := Rank([]string{"communication"}, defaultCareers(t))

	report := ranked.ReportByLocation()

	pune := report["Pune"]
	require.Len(t, pune, 1)
	assert.Equal(t, "Full Stack Developer", pune[0]["title"])
	assert.Equal(t, "60%", pune[0]["match"])

	bangalore := report["Bangalore"]
	require.Len(t, bangalore, 4)
	assert.Equal(t, "Product Manager", bangalore[0]["title"])
	assert.Equal(t, "69%", bangalore[0]["match"])
	assert.Equal(t, "₹10-30 LPA", bangalore[0]["salary"])
}

func TestRecommendationsDumpToTmpFile(t *testing.T) {
	ranked := Rank([]string{"react"}, defaultCareers(t))

	path, err := ranked.DumpToTmpFile()
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Items []struct {
			ID         string   `json:"id"`
			MatchScore int      `json:"match_score"`
			Matched    []string `json:"matched_skills"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Items, 4)
	assert.Equal(t, "fullstack-developer", decoded.Items[0].ID)
	assert.Equal(t, 69, decoded.Items[0].MatchScore)
	assert.Equal(t, []string{"React"}, decoded.Items[0].Matched)
}
