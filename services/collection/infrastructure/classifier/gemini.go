package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/ghuser/boxjoy/pkg/logger"
	collectiondomain "github.com/ghuser/boxjoy/services/collection/domain"
	"github.com/ghuser/boxjoy/services/collection/domain/models"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.5-flash"

	temperature = 0.4

	prompt = "Identify this blind box toy / art toy figure. Provide its name, series, likely rarity, " +
		"and a cute description. If you are unsure, provide the best guess based on visual style."
)

// Config configures a GeminiClassifier.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // overrides the API endpoint; empty uses the public Gemini API
}

// GeminiClassifier identifies figures in photos with the Gemini API.
type GeminiClassifier struct {
	client *genai.Client
	model  string
	log    logger.Logger
}

// identificationPayload is the JSON object the model is asked to return.
type identificationPayload struct {
	Name        string  `json:"name"`
	Series      string  `json:"series"`
	Rarity      string  `json:"rarity"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// NewGeminiClassifier creates a Gemini client. It does not contact the API.
func NewGeminiClassifier(ctx context.Context, cfg Config, log logger.Logger) (*GeminiClassifier, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClassifier{client: client, model: cfg.Model, log: log}, nil
}

// Identify sends one image and the identification prompt and parses the structured reply.
// Any failure is logged once and returned wrapped in ErrClassificationFailed.
func (c *GeminiClassifier) Identify(ctx context.Context, image []byte, mimeType string) (models.Identification, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	})
	if err != nil {
		return c.fail(ctx, fmt.Errorf("generate content: %w", err))
	}

	id, err := parseIdentification(resp.Text())
	if err != nil {
		return c.fail(ctx, err)
	}
	return id, nil
}

func (c *GeminiClassifier) fail(ctx context.Context, err error) (models.Identification, error) {
	c.log.ErrorContext(ctx, "gemini identification failed", "model", c.model, "error", err)
	return models.Identification{}, fmt.Errorf("%w: %w", collectiondomain.ErrClassificationFailed, err)
}

// parseIdentification decodes the model's JSON reply. The rarity must be one of
// the known values; confidence is clamped into [0, 1].
func parseIdentification(text string) (models.Identification, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Identification{}, fmt.Errorf("empty response")
	}

	var p identificationPayload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return models.Identification{}, fmt.Errorf("decode response: %w", err)
	}

	rarity, err := models.ParseRarity(p.Rarity)
	if err != nil {
		return models.Identification{}, err
	}

	return models.Identification{
		Name:        p.Name,
		Series:      p.Series,
		Rarity:      rarity,
		Description: p.Description,
		Confidence:  min(max(p.Confidence, 0), 1),
	}, nil
}

func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name": {
				Type:        genai.TypeString,
				Description: "The specific character name of the blind box toy.",
			},
			"series": {
				Type:        genai.TypeString,
				Description: "The likely series name (e.g., Pop Mart Dimoo, Skullpanda, Labubu, Sonny Angel).",
			},
			"rarity": {
				Type:        genai.TypeString,
				Enum:        models.Rarities(),
				Description: "Estimated rarity based on visual cues or common knowledge of the character.",
			},
			"description": {
				Type:        genai.TypeString,
				Description: "A fun, short, and creative description of the character's visual features and vibe (max 2 sentences).",
			},
			"confidence": {
				Type:        genai.TypeNumber,
				Description: "Confidence level of the identification from 0 to 1.",
			},
		},
		Required: []string{"name", "series", "rarity", "description", "confidence"},
	}
}
