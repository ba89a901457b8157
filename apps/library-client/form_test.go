package libraryclient

import (
	"fmt"
	"strings"
	"testing"

	"video-library/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTagNormalizesAndDedups(t *testing.T) {
	f := &VideoForm{}
	f.AddTag("  Travel ")
	f.AddTag("VLOG")
	f.AddTag("travel")
	f.AddTag("   ")

	assert.Equal(t, []string{"travel", "vlog"}, f.Tags)
	assert.Empty(t, f.Errors.Tags)
}

func TestAddTagCap(t *testing.T) {
	f := &VideoForm{}
	for i := 0; i < maxTags; i++ {
		f.AddTag(fmt.Sprintf("tag%d", i))
	}
	require.Len(t, f.Tags, maxTags)

	f.AddTag("one-too-many")
	assert.Len(t, f.Tags, maxTags)
	assert.Equal(t, msgTooManyTags, f.Errors.Tags)

	f.RemoveTag("tag0")
	f.AddTag("fits-now")
	assert.Len(t, f.Tags, maxTags)
	assert.Empty(t, f.Errors.Tags)
	assert.Equal(t, "fits-now", f.Tags[maxTags-1])
}

func TestRemoveTag(t *testing.T) {
	f := &VideoForm{Tags: []string{"a", "b", "c"}}
	f.RemoveTag("b")
	assert.Equal(t, []string{"a", "c"}, f.Tags)
	f.RemoveTag("missing")
	assert.Equal(t, []string{"a", "c"}, f.Tags)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		form      VideoForm
		wantOK    bool
		wantTitle string
		wantTags  string
	}{
		{name: "valid", form: VideoForm{Title: "  My Trip ", Tags: []string{"travel"}}, wantOK: true},
		{name: "empty title", form: VideoForm{Title: "  "}, wantTitle: msgTitleRequired},
		{name: "long title", form: VideoForm{Title: strings.Repeat("x", 101)}, wantTitle: msgTitleTooLong},
		{
			name:     "too many prefilled tags",
			form:     VideoForm{Title: "ok", Tags: strings.Split("a,b,c,d,e,f,g,h,i,j,k", ",")},
			wantTags: msgTooManyTags,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.form
			in, ok := f.Validate()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTitle, f.Errors.Title)
			assert.Equal(t, tt.wantTags, f.Errors.Tags)
			if ok {
				assert.Equal(t, "My Trip", in.Title)
				assert.Equal(t, []string{"travel"}, in.Tags)
			}
		})
	}
}

func TestValidateClearsPreviousErrors(t *testing.T) {
	f := &VideoForm{}
	_, ok := f.Validate()
	require.False(t, ok)

	f.Title = "now valid"
	_, ok = f.Validate()
	assert.True(t, ok)
	assert.True(t, f.Errors.Empty())
}

func TestNewVideoFormFromIdea(t *testing.T) {
	idea := models.VideoIdea{Title: "Knife Skills", Description: "ignored", Tags: []string{"Cooking", "knives"}}
	f := NewVideoFormFromIdea(idea)

	assert.Equal(t, "Knife Skills", f.Title)
	assert.Equal(t, []string{"Cooking", "knives"}, f.Tags)

	f.Tags[0] = "changed"
	assert.Equal(t, "Cooking", idea.Tags[0], "form owns its tag slice")
}
