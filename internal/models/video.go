package models

import "time"

// Video is a single entry in the video library.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
	Tags         []string  `json:"tags"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     int       `json:"duration"` // seconds
	Views        int       `json:"views"`
}

// CreateVideoRequest is the body accepted by the create endpoint.
// Any other field sent by the caller is ignored.
type CreateVideoRequest struct {
	Title *string  `json:"title"`
	Tags  []string `json:"tags"`
}

// NewVideo is a validated, normalized create request.
type NewVideo struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// VideoIdea is an AI-suggested idea. It is never stored unless promoted
// into a NewVideo.
type VideoIdea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type IdeaResponse struct {
	VideoIdeas []VideoIdea `json:"video_ideas"`
}

type GenerateIdeasRequest struct {
	Topic string `json:"topic"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// LibraryStats summarizes the library for the periodic report.
type LibraryStats struct {
	Date       time.Time `json:"date"`
	Total      int       `json:"total_videos"`
	TotalViews int       `json:"total_views"`
	TagCount   int       `json:"distinct_tags"`
	Newest     *Video    `json:"newest,omitempty"`
}

// FieldError names one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
