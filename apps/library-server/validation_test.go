package libraryserver

import (
	"fmt"
	"strings"
	"testing"

	"video-library/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func manyTags(n int) []string {
	tags := make([]string, n)
	for i := range tags {
		tags[i] = fmt.Sprintf("tag%d", i)
	}
	return tags
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name       string
		req        models.CreateVideoRequest
		wantFields []string
		wantTitle  string
	}{
		{
			name:      "valid",
			req:       models.CreateVideoRequest{Title: strPtr("My Trip"), Tags: []string{"travel", "vlog"}},
			wantTitle: "My Trip",
		},
		{
			name:      "title is trimmed",
			req:       models.CreateVideoRequest{Title: strPtr("  padded  "), Tags: []string{}},
			wantTitle: "padded",
		},
		{
			name:      "exactly 100 characters",
			req:       models.CreateVideoRequest{Title: strPtr(strings.Repeat("a", 100)), Tags: []string{}},
			wantTitle: strings.Repeat("a", 100),
		},
		{
			name:      "100 multibyte characters",
			req:       models.CreateVideoRequest{Title: strPtr(strings.Repeat("é", 100)), Tags: []string{}},
			wantTitle: strings.Repeat("é", 100),
		},
		{
			name:      "exactly 10 tags",
			req:       models.CreateVideoRequest{Title: strPtr("t"), Tags: manyTags(10)},
			wantTitle: "t",
		},
		{
			name:       "missing title",
			req:        models.CreateVideoRequest{Tags: []string{}},
			wantFields: []string{"title"},
		},
		{
			name:       "whitespace title",
			req:        models.CreateVideoRequest{Title: strPtr(" \t\n "), Tags: []string{}},
			wantFields: []string{"title"},
		},
		{
			name:       "101 characters after trim",
			req:        models.CreateVideoRequest{Title: strPtr(" " + strings.Repeat("b", 101) + " "), Tags: []string{}},
			wantFields: []string{"title"},
		},
		{
			name:       "11 tags",
			req:        models.CreateVideoRequest{Title: strPtr("t"), Tags: manyTags(11)},
			wantFields: []string{"tags"},
		},
		{
			name:       "tags missing",
			req:        models.CreateVideoRequest{Title: strPtr("t")},
			wantFields: []string{"tags"},
		},
		{
			name:       "both invalid",
			req:        models.CreateVideoRequest{Title: strPtr(""), Tags: manyTags(12)},
			wantFields: []string{"title", "tags"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateCreate(tt.req)

			var fields []string
			for _, e := range res.Errors {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)

			if len(tt.wantFields) == 0 {
				assert.True(t, res.OK())
				assert.Empty(t, res.Message())
				assert.Equal(t, tt.wantTitle, res.Video.Title)
				assert.Equal(t, len(tt.req.Tags), len(res.Video.Tags))
			} else {
				assert.False(t, res.OK())
				assert.Equal(t, res.Errors[0].Message, res.Message())
			}
		})
	}
}

func TestValidateCreateMessages(t *testing.T) {
	res := ValidateCreate(models.CreateVideoRequest{Title: strPtr(""), Tags: []string{}})
	assert.Contains(t, res.Message(), "title is required")

	res = ValidateCreate(models.CreateVideoRequest{Title: strPtr(strings.Repeat("x", 101)), Tags: []string{}})
	assert.Contains(t, res.Message(), "cannot exceed 100 characters")

	res = ValidateCreate(models.CreateVideoRequest{Title: strPtr("ok"), Tags: manyTags(11)})
	assert.Contains(t, res.Message(), "maximum of 10 tags")
}
