package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"video-library/internal/models"
	"video-library/shared/config"
	"video-library/shared/logging"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

var (
	// ErrNotConfigured means no Gemini API key is set.
	ErrNotConfigured = errors.New("gemini api key is not configured")
	// ErrUpstream wraps a failed call to the Gemini API.
	ErrUpstream = errors.New("gemini request failed")
	// ErrEmptyResponse means Gemini answered with no text.
	ErrEmptyResponse = errors.New("gemini returned an empty response")
	// ErrMalformedResponse means the text was not JSON of the expected shape.
	ErrMalformedResponse = errors.New("gemini returned a malformed response")
)

// IdeaGenerator asks Gemini for video ideas about a topic.
type IdeaGenerator struct {
	apiKey    string
	baseURL   string
	model     string
	ideaCount int
	log       zerolog.Logger

	once      sync.Once
	client    *genai.Client
	clientErr error
}

func NewIdeaGenerator(cfg *config.AIConfig) *IdeaGenerator {
	return &IdeaGenerator{
		apiKey:    cfg.GeminiAPIKey,
		baseURL:   cfg.BaseURL,
		model:     cfg.Model,
		ideaCount: cfg.IdeaCount,
		log:       logging.WithComponent("ai"),
	}
}

// Configured reports whether an API key is present.
func (g *IdeaGenerator) Configured() bool {
	return g.apiKey != ""
}

func (g *IdeaGenerator) getClient(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		cc := &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		}
		if g.baseURL != "" {
			cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
		}
		g.client, g.clientErr = genai.NewClient(ctx, cc)
	})
	return g.client, g.clientErr
}

// GenerateIdeas returns the ideas Gemini produced for topic. Every failure
// wraps exactly one of the package's sentinel errors.
func (g *IdeaGenerator) GenerateIdeas(ctx context.Context, topic string) (*models.IdeaResponse, error) {
	if !g.Configured() {
		g.log.Error().Msg("GEMINI_API_KEY is not configured")
		return nil, ErrNotConfigured
	}

	client, err := g.getClient(ctx)
	if err != nil {
		g.log.Error().Err(err).Msg("failed to create Gemini client")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(g.buildPrompt(topic)), g.generationConfig())
	if err != nil {
		g.log.Error().Err(err).Str("topic", topic).Msg("error calling Gemini API")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		g.log.Error().Str("topic", topic).Msg("Gemini API returned an empty response")
		return nil, ErrEmptyResponse
	}

	ideas, err := ParseIdeas(text)
	if err != nil {
		g.log.Error().Err(err).Str("response", text).Msg("failed to parse Gemini API response")
		return nil, err
	}

	g.log.Debug().Str("topic", topic).Int("ideas", len(ideas.VideoIdeas)).Msg("ideas generated")
	return ideas, nil
}

func (g *IdeaGenerator) buildPrompt(topic string) string {
	return fmt.Sprintf("Generate %d creative video ideas about: %q.", g.ideaCount, topic)
}

func (g *IdeaGenerator) generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   IdeaSchema(g.ideaCount),
	}
}

// IdeaSchema is the structured output schema requested from the model.
func IdeaSchema(count int) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"video_ideas": {
				Type:        genai.TypeArray,
				Description: fmt.Sprintf("A list of %d creative and unique video ideas.", count),
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString, Description: "A catchy title."},
						"description": {Type: genai.TypeString, Description: "A compelling description."},
						"tags": {
							Type:        genai.TypeArray,
							Description: "Relevant keywords.",
							Items:       &genai.Schema{Type: genai.TypeString},
						},
					},
					Required: []string{"title", "description", "tags"},
				},
			},
		},
		Required: []string{"video_ideas"},
	}
}

// ParseIdeas decodes a model response of the form {"video_ideas": [...]}.
func ParseIdeas(text string) (*models.IdeaResponse, error) {
	var raw struct {
		VideoIdeas *[]struct {
			Title       *string   `json:"title"`
			Description *string   `json:"description"`
			Tags        *[]string `json:"tags"`
		} `json:"video_ideas"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if raw.VideoIdeas == nil {
		return nil, fmt.Errorf("%w: missing video_ideas", ErrMalformedResponse)
	}

	resp := &models.IdeaResponse{VideoIdeas: make([]models.VideoIdea, 0, len(*raw.VideoIdeas))}
	for i, idea := range *raw.VideoIdeas {
		if idea.Title == nil || idea.Description == nil || idea.Tags == nil {
			return nil, fmt.Errorf("%w: idea %d is missing title, description or tags", ErrMalformedResponse, i)
		}
		resp.VideoIdeas = append(resp.VideoIdeas, models.VideoIdea{
			Title:       *idea.Title,
			Description: *idea.Description,
			Tags:        *idea.Tags,
		})
	}
	return resp, nil
}
