package libraryclient

import (
	"strings"
	"testing"
	"time"

	"video-library/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestSortVideos(t *testing.T) {
	videos := []models.Video{
		{ID: "mid", CreatedAt: day(10)},
		{ID: "new", CreatedAt: day(20)},
		{ID: "old", CreatedAt: day(1)},
	}

	ids := func(vs []models.Video) []string {
		var out []string
		for _, v := range vs {
			out = append(out, v.ID)
		}
		return out
	}

	assert.Equal(t, []string{"new", "mid", "old"}, ids(SortVideos(videos, SortNewest)))
	assert.Equal(t, []string{"old", "mid", "new"}, ids(SortVideos(videos, SortOldest)))
	assert.Equal(t, "mid", videos[0].ID, "input is not reordered")
}

func TestParseSortOrder(t *testing.T) {
	for in, want := range map[string]SortOrder{"": SortNewest, "newest": SortNewest, "OLDEST": SortOldest} {
		got, err := ParseSortOrder(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseSortOrder("popular")
	assert.Error(t, err)
}

func TestFormatViews(t *testing.T) {
	tests := map[int]string{
		0:         "0 views",
		999:       "999 views",
		1000:      "1K views",
		1500:      "2K views",
		12_345:    "12K views",
		999_999:   "1000K views",
		1_000_000: "1.0M views",
		1_250_000: "1.3M views",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatViews(in), "views=%d", in)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{
		0:    "0:00",
		59:   "0:59",
		305:  "5:05",
		3599: "59:59",
		3600: "1:00:00",
		3725: "1:02:05",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDuration(in), "seconds=%d", in)
	}
}

func TestRenderLibraryStates(t *testing.T) {
	assert.Contains(t, RenderLibrary(LibraryState{Loading: true}, SortNewest), "Loading")

	out := RenderLibrary(LibraryState{Error: msgLoadFailed}, SortNewest)
	assert.Contains(t, out, "Failed to Load Videos")
	assert.Contains(t, out, msgLoadFailed)

	out = RenderLibrary(LibraryState{Videos: []models.Video{}}, SortNewest)
	assert.Contains(t, out, "No videos yet")

	out = RenderLibrary(LibraryState{Videos: []models.Video{
		{Title: "Older", CreatedAt: day(1), Views: 10, Duration: 65},
		{Title: "Newer", CreatedAt: day(2), Views: 2500, Duration: 3700},
	}}, SortNewest)
	assert.Contains(t, out, "Newest First")
	assert.Less(t, strings.Index(out, "Newer"), strings.Index(out, "Older"))
	assert.Contains(t, out, "3K views")
	assert.Contains(t, out, "Jan 2, 2024")
	assert.Contains(t, out, "1:01:40")
}

func TestRenderCardShowsFourTags(t *testing.T) {
	out := RenderCard(models.Video{Title: "t", CreatedAt: day(1), Tags: []string{"t1", "t2", "t3", "t4", "t5"}})
	assert.Contains(t, out, "t4")
	assert.NotContains(t, out, "t5")
}

func TestRenderIdeas(t *testing.T) {
	b := &IdeaBrowser{Ideas: []models.VideoIdea{{Title: "Knife Skills", Description: "Chop.", Tags: []string{"cooking"}}}}
	out := RenderIdeas(b)
	assert.Contains(t, out, "1. Knife Skills")
	assert.Contains(t, out, "Chop.")
	assert.Contains(t, out, "cooking")

	b.Error = "An error occurred: boom"
	assert.Contains(t, RenderIdeas(b), "boom")
}

func TestRenderFormErrors(t *testing.T) {
	out := RenderFormErrors(FormErrors{Title: msgTitleRequired, Tags: msgTooManyTags})
	assert.Contains(t, out, msgTitleRequired)
	assert.Contains(t, out, msgTooManyTags)
	assert.Empty(t, RenderFormErrors(FormErrors{}))
}
