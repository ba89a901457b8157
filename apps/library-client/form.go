package libraryclient

import (
	"slices"
	"strings"
	"unicode/utf8"

	"video-library/internal/models"
)

const (
	maxTitleLength = 100
	maxTags        = 10

	msgTitleRequired = "Title is required."
	msgTitleTooLong  = "Title cannot be longer than 100 characters."
	msgTooManyTags   = "You can add a maximum of 10 tags."
)

// FormErrors holds inline validation messages; empty means no error.
type FormErrors struct {
	Title string
	Tags  string
}

func (e FormErrors) Empty() bool {
	return e.Title == "" && e.Tags == ""
}

// VideoForm is the client-side create form. It validates on its own,
// independently of the server.
type VideoForm struct {
	Title  string
	Tags   []string
	Errors FormErrors
}

// NewVideoFormFromIdea pre-fills a form from a promoted idea. Tags arrive
// as the model produced them; they are not normalized until re-entered.
func NewVideoFormFromIdea(idea models.VideoIdea) *VideoForm {
	tags := make([]string, len(idea.Tags))
	copy(tags, idea.Tags)
	return &VideoForm{Title: idea.Title, Tags: tags}
}

// AddTag lower-cases and trims raw and appends it unless it is blank or
// already present. Adding to a full list sets a tag error instead.
func (f *VideoForm) AddTag(raw string) {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "" {
		return
	}
	if len(f.Tags) >= maxTags {
		f.Errors.Tags = msgTooManyTags
		return
	}
	if !slices.Contains(f.Tags, tag) {
		f.Tags = append(f.Tags, tag)
		f.Errors.Tags = ""
	}
}

func (f *VideoForm) RemoveTag(tag string) {
	f.Tags = slices.DeleteFunc(f.Tags, func(t string) bool { return t == tag })
}

// Validate checks the form and returns the normalized input when it passes.
func (f *VideoForm) Validate() (models.NewVideo, bool) {
	var errs FormErrors
	title := strings.TrimSpace(f.Title)
	switch {
	case title == "":
		errs.Title = msgTitleRequired
	case utf8.RuneCountInString(title) > maxTitleLength:
		errs.Title = msgTitleTooLong
	}
	if len(f.Tags) > maxTags {
		errs.Tags = msgTooManyTags
	}

	f.Errors = errs
	if !errs.Empty() {
		return models.NewVideo{}, false
	}

	tags := make([]string, len(f.Tags))
	copy(tags, f.Tags)
	return models.NewVideo{Title: title, Tags: tags}, true
}
