package libraryclient

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"video-library/internal/models"

	"github.com/charmbracelet/lipgloss"
)

type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"

	cardTagLimit = 4
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortNewest, "":
		return SortNewest, nil
	case SortOldest:
		return SortOldest, nil
	default:
		return "", fmt.Errorf("unknown sort order %q (want newest or oldest)", s)
	}
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")).
			MarginBottom(1)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))
	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})
	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			MarginBottom(1)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

// SortVideos returns a copy of videos ordered purely by created_at.
func SortVideos(videos []models.Video, order SortOrder) []models.Video {
	sorted := make([]models.Video, len(videos))
	copy(sorted, videos)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortOldest {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

func FormatViews(views int) string {
	switch {
	case views >= 1_000_000:
		return fmt.Sprintf("%.1fM views", math.Round(float64(views)/100_000)/10)
	case views >= 1_000:
		return fmt.Sprintf("%dK views", int(math.Round(float64(views)/1_000)))
	default:
		return fmt.Sprintf("%d views", views)
	}
}

// FormatDuration renders seconds as m:ss, or h:mm:ss from one hour up.
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func RenderCard(v models.Video) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Title))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("%s • %s • %s", FormatViews(v.Views), FormatDate(v.CreatedAt), FormatDuration(v.Duration))))

	if len(v.Tags) > 0 {
		tags := v.Tags
		if len(tags) > cardTagLimit {
			tags = tags[:cardTagLimit]
		}
		rendered := make([]string, len(tags))
		for i, t := range tags {
			rendered[i] = tagStyle.Render(t)
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(rendered, " "))
	}
	return cardStyle.Render(b.String())
}

// RenderLibrary renders the list view for a library state.
func RenderLibrary(state LibraryState, order SortOrder) string {
	if state.Loading {
		return metaStyle.Render("Loading videos...")
	}
	if state.Error != "" {
		return errorStyle.Render("Failed to Load Videos") + "\n" + state.Error
	}

	label := "Newest First"
	if order == SortOldest {
		label = "Oldest First"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Video Library (%s)", label)))
	b.WriteString("\n")

	if len(state.Videos) == 0 {
		b.WriteString("No videos yet\nYour video library is empty.\n")
		b.WriteString(hintStyle.Render("Add your first video with `create`, or get AI ideas with `ideas`."))
		b.WriteString("\n")
		return b.String()
	}

	for _, v := range SortVideos(state.Videos, order) {
		b.WriteString(RenderCard(v))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderFormErrors lists inline form errors, one per line.
func RenderFormErrors(errs FormErrors) string {
	var lines []string
	if errs.Title != "" {
		lines = append(lines, errorStyle.Render("title: "+errs.Title))
	}
	if errs.Tags != "" {
		lines = append(lines, errorStyle.Render("tags: "+errs.Tags))
	}
	return strings.Join(lines, "\n")
}

// RenderIdeas renders the idea browser, numbering ideas from 1.
func RenderIdeas(b *IdeaBrowser) string {
	if b.Error != "" {
		return errorStyle.Render(b.Error)
	}
	if len(b.Ideas) == 0 {
		return metaStyle.Render("No ideas yet.")
	}

	var out strings.Builder
	out.WriteString(headerStyle.Render("AI Video Idea Generator"))
	out.WriteString("\n")
	for i, idea := range b.Ideas {
		var card strings.Builder
		card.WriteString(titleStyle.Render(fmt.Sprintf("%d. %s", i+1, idea.Title)))
		card.WriteString("\n")
		card.WriteString(idea.Description)
		if len(idea.Tags) > 0 {
			rendered := make([]string, len(idea.Tags))
			for j, t := range idea.Tags {
				rendered[j] = tagStyle.Render(t)
			}
			card.WriteString("\n")
			card.WriteString(strings.Join(rendered, " "))
		}
		out.WriteString(cardStyle.Render(card.String()))
		out.WriteString("\n")
	}
	out.WriteString(hintStyle.Render("Use an idea with --use N."))
	out.WriteString("\n")
	return out.String()
}
