package libraryclient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"video-library/internal/models"
)

const (
	msgTopicRequired   = "Please enter a topic to generate ideas."
	msgInvalidResponse = "Invalid response format from server."
)

// IdeaAPI is the subset of Client the IdeaBrowser needs.
type IdeaAPI interface {
	GenerateIdeas(ctx context.Context, topic string) ([]models.VideoIdea, error)
}

// IdeaBrowser holds the ideas for the last requested topic.
type IdeaBrowser struct {
	api     IdeaAPI
	Ideas   []models.VideoIdea
	Loading bool
	Error   string
}

func NewIdeaBrowser(api IdeaAPI) *IdeaBrowser {
	return &IdeaBrowser{api: api}
}

// Generate replaces the current ideas with fresh ones for topic. A blank
// topic is rejected locally without calling the server.
func (b *IdeaBrowser) Generate(ctx context.Context, topic string) bool {
	if strings.TrimSpace(topic) == "" {
		b.Error = msgTopicRequired
		return false
	}

	b.Loading = true
	b.Error = ""
	b.Ideas = nil
	defer func() { b.Loading = false }()

	ideas, err := b.api.GenerateIdeas(ctx, topic)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, ErrInvalidResponse) {
			msg = msgInvalidResponse
		}
		b.Error = fmt.Sprintf("An error occurred: %s", msg)
		return false
	}
	b.Ideas = ideas
	return true
}

// Use promotes the idea at index i into a pre-filled create form.
func (b *IdeaBrowser) Use(i int) (*VideoForm, error) {
	if i < 0 || i >= len(b.Ideas) {
		return nil, fmt.Errorf("no idea number %d (have %d)", i+1, len(b.Ideas))
	}
	return NewVideoFormFromIdea(b.Ideas[i]), nil
}
