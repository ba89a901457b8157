package libraryclient

import (
	"context"
	"errors"
	"testing"

	"video-library/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdeaAPI struct {
	calls int
	ideas []models.VideoIdea
	err   error
}

func (f *fakeIdeaAPI) GenerateIdeas(ctx context.Context, topic string) ([]models.VideoIdea, error) {
	f.calls++
	return f.ideas, f.err
}

func TestIdeaBrowserBlankTopic(t *testing.T) {
	api := &fakeIdeaAPI{}
	b := NewIdeaBrowser(api)

	assert.False(t, b.Generate(context.Background(), "   "))
	assert.Equal(t, msgTopicRequired, b.Error)
	assert.Zero(t, api.calls)
}

func TestIdeaBrowserGenerateAndUse(t *testing.T) {
	api := &fakeIdeaAPI{ideas: []models.VideoIdea{
		{Title: "First", Tags: []string{"a"}},
		{Title: "Second", Tags: []string{"b", "c"}},
	}}
	b := NewIdeaBrowser(api)

	require.True(t, b.Generate(context.Background(), "cooking"))
	assert.False(t, b.Loading)
	assert.Empty(t, b.Error)
	require.Len(t, b.Ideas, 2)

	form, err := b.Use(1)
	require.NoError(t, err)
	assert.Equal(t, "Second", form.Title)
	assert.Equal(t, []string{"b", "c"}, form.Tags)

	_, err = b.Use(2)
	assert.Error(t, err)
	_, err = b.Use(-1)
	assert.Error(t, err)
}

func TestIdeaBrowserErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "server message", err: &APIError{Status: 500, Message: "AI service is not configured correctly."}, want: "An error occurred: AI service is not configured correctly."},
		{name: "bad shape", err: ErrInvalidResponse, want: "An error occurred: Invalid response format from server."},
		{name: "transport", err: errors.New("dial tcp: refused"), want: "An error occurred: dial tcp: refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewIdeaBrowser(&fakeIdeaAPI{err: tt.err})
			b.Ideas = []models.VideoIdea{{Title: "stale"}}

			assert.False(t, b.Generate(context.Background(), "cooking"))
			assert.Equal(t, tt.want, b.Error)
			assert.Empty(t, b.Ideas, "previous ideas are cleared")
		})
	}
}
