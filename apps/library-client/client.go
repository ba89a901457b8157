package libraryclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"video-library/internal/models"
)

// ErrInvalidResponse means a successful idea response had no video_ideas
// array.
var ErrInvalidResponse = errors.New("invalid response format from server")

// APIError is a non-2xx response from the library server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API error! status: %d", e.Status)
}

// Client talks to the library server's /api endpoints. It adds no timeout
// or retries of its own.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api",
		httpClient: httpClient,
	}
}

func (c *Client) ListVideos(ctx context.Context) ([]models.Video, error) {
	var videos []models.Video
	if err := c.do(ctx, http.MethodGet, "/videos", nil, &videos); err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []models.Video{}
	}
	return videos, nil
}

func (c *Client) CreateVideo(ctx context.Context, in models.NewVideo) (*models.Video, error) {
	var video models.Video
	if err := c.do(ctx, http.MethodPost, "/videos", in, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// GenerateIdeas requests ideas for topic. A 2xx body without a video_ideas
// array is reported as an invalid response.
func (c *Client) GenerateIdeas(ctx context.Context, topic string) ([]models.VideoIdea, error) {
	var resp struct {
		VideoIdeas *[]models.VideoIdea `json:"video_ideas"`
	}
	if err := c.do(ctx, http.MethodPost, "/generate-ideas", models.GenerateIdeasRequest{Topic: topic}, &resp); err != nil {
		return nil, err
	}
	if resp.VideoIdeas == nil {
		return nil, ErrInvalidResponse
	}
	return *resp.VideoIdeas, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
