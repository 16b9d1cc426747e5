package enhance

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used when the config names none.
const DefaultModel = "gemini-2.5-flash"

// MaxBioLength is the length the model is asked to stay under.
const MaxBioLength = 250

// Gemini enhances bios through the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini enhancer.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrNoKey
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Model returns the model name requests are sent to.
func (g *Gemini) Model() string {
	return g.model
}

func (g *Gemini) Enhance(ctx context.Context, req Request) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(Prompt(req)), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return Clean(resp.Text()), nil
}

// Prompt builds the copywriting instruction for req.
func Prompt(req Request) string {
	var b strings.Builder
	b.WriteString("You are an expert copywriter for developer portfolios.\n")
	b.WriteString("Enhance the following bio to make it sound more professional, punchy, and exciting.\n")
	fmt.Fprintf(&b, "Keep it under %d characters.\n\n", MaxBioLength)
	fmt.Fprintf(&b, "Role: %s\n", strings.TrimSpace(req.Role))
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(req.Skills, ", "))
	fmt.Fprintf(&b, "Current Draft: %q\n\n", strings.TrimSpace(req.Bio))
	b.WriteString("Return ONLY the enhanced bio text. No quotes.")
	return b.String()
}

// Clean trims whitespace and a single pair of wrapping quotes.
func Clean(text string) string {
	text = strings.TrimSpace(text)
	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			text = strings.TrimSpace(text[1 : len(text)-1])
		}
	}
	return text
}
