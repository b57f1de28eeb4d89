package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/auth/oauth2adapt"
	"golang.org/x/oauth2/google"
	"google.golang.org/genai"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash"

	defaultVertexLocation = "us-central1"
	cloudPlatformScope    = "https://www.googleapis.com/auth/cloud-platform"
)

// Gemini calls the Gemini API through the genai client with a JSON
// response schema matching Analysis.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini API client authenticated with apiKey. A non-empty
// baseURL replaces the default endpoint.
func NewGemini(ctx context.Context, apiKey, model, baseURL string) (*Gemini, error) {
	return newGemini(ctx, model, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
}

// NewGeminiFromADC builds a Vertex AI client from Application Default
// Credentials. The project comes from the credentials or
// GOOGLE_CLOUD_PROJECT, the location from GOOGLE_CLOUD_LOCATION.
func NewGeminiFromADC(ctx context.Context, model string) (*Gemini, error) {
	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("gemini default credentials: %w", err)
	}

	project := creds.ProjectID
	if project == "" {
		project = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}
	location := os.Getenv("GOOGLE_CLOUD_LOCATION")
	if location == "" {
		location = defaultVertexLocation
	}

	return newGemini(ctx, model, &genai.ClientConfig{
		Backend:     genai.BackendVertexAI,
		Project:     project,
		Location:    location,
		Credentials: oauth2adapt.AuthCredentialsFromOauth2Credentials(creds),
	})
}

func newGemini(ctx context.Context, model string, cfg *genai.ClientConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Summarize(ctx context.Context, c domain.Component) (Analysis, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(Prompt(c)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisSchema(),
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("gemini generate: %w", err)
	}
	return decodeAnalysis(resp.Text())
}

func analysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary":       {Type: genai.TypeString},
			"importance":    {Type: genai.TypeString},
			"businessValue": {Type: genai.TypeString},
			"technicalDetails": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"summary", "importance", "businessValue", "technicalDetails"},
	}
}

// decodeAnalysis parses a JSON analysis, tolerating a markdown code fence
// around it.
func decodeAnalysis(text string) (Analysis, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Analysis{}, ErrEmptyResponse
	}
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}

	var a Analysis
	if err := json.Unmarshal([]byte(text), &a); err != nil {
		return Analysis{}, fmt.Errorf("decode analysis: %w", err)
	}
	if !a.Complete() {
		return a, ErrIncompleteAnalysis
	}
	return a, nil
}
