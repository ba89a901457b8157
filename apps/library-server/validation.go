package libraryserver

import (
	"strings"
	"unicode/utf8"

	"video-library/internal/models"
)

const (
	MaxTitleLength = 100
	MaxTags        = 10

	msgTitleRequired = "Video title is required and must be a non-empty string."
	msgTitleTooLong  = "Video title cannot exceed 100 characters."
	msgTags          = "Tags must be an array with a maximum of 10 tags."
)

// ValidationResult is either a normalized video (Errors empty) or the list
// of rejected fields.
type ValidationResult struct {
	Video  models.NewVideo
	Errors []models.FieldError
}

func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Message returns the first failure, title before tags.
func (r ValidationResult) Message() string {
	if r.OK() {
		return ""
	}
	return r.Errors[0].Message
}

// ValidateCreate checks a create request. The title is trimmed; tags are
// passed through unchanged apart from the count limit. A missing tags field
// is rejected, an empty list is not.
func ValidateCreate(req models.CreateVideoRequest) ValidationResult {
	var res ValidationResult

	title := ""
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
	}
	switch {
	case title == "":
		res.Errors = append(res.Errors, models.FieldError{Field: "title", Message: msgTitleRequired})
	case utf8.RuneCountInString(title) > MaxTitleLength:
		res.Errors = append(res.Errors, models.FieldError{Field: "title", Message: msgTitleTooLong})
	}

	if req.Tags == nil || len(req.Tags) > MaxTags {
		res.Errors = append(res.Errors, models.FieldError{Field: "tags", Message: msgTags})
	}

	if res.OK() {
		tags := make([]string, len(req.Tags))
		copy(tags, req.Tags)
		res.Video = models.NewVideo{Title: title, Tags: tags}
	}
	return res
}
