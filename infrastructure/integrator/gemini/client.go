package gemini

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"github.com/sellkit/listing-assistant-api/internal/config"
)

// Client wraps the Gemini SDK behind the two calls the assistant needs:
// a multimodal call for photo analysis and a text call for everything else.
type Client interface {
	GenerateFromImages(ctx context.Context, prompt string, images []ImagePart) (string, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ImagePart is one inline image for a multimodal request.
type ImagePart struct {
	Data     []byte
	MIMEType string
}

type GeminiClient struct {
	client *genai.Client
	cfg    *config.Config
}

func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	if cfg.GenAI.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GenAI.APIKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating gemini client")
	}

	return &GeminiClient{
		client: client,
		cfg:    cfg,
	}, nil
}

// GenerateFromImages sends the prompt plus inline images to the vision model
// and returns the raw text of the first candidate.
func (c *GeminiClient) GenerateFromImages(ctx context.Context, prompt string, images []ImagePart) (string, error) {
	parts := make([]*genai.Part, 0, len(images)+1)
	parts = append(parts, genai.NewPartFromText(prompt))
	for _, img := range images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.cfg.GenAI.VisionModel, contents, nil)
	if err != nil {
		return "", errors.Wrap(err, "gemini vision request")
	}

	return result.Text(), nil
}

// GenerateText sends a text-only prompt to the text model.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.cfg.GenAI.TextModel, genai.Text(prompt), nil)
	if err != nil {
		return "", errors.Wrap(err, "gemini text request")
	}

	return result.Text(), nil
}
