package quote

import (
	"context"
	"log/slog"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

const geminiPrompt = "Give me one short motivational quote about saving money and " +
	"financial discipline. Reply with the quote only, no attribution."

// Gemini asks a Gemini model for a quote and falls back to the
// supplied Supplier on any error, so it never fails to produce one.
type Gemini struct {
	client   *genai.Client
	fallback Supplier
}

// NewGemini initializes the Gemini client from the environment
// (GEMINI_API_KEY). The fallback is used when the client cannot be
// created or a request fails.
func NewGemini(ctx context.Context, fallback Supplier) *Gemini {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		slog.Debug("gemini client unavailable, using built-in quotes", "error", err)
		client = nil
	}
	return &Gemini{client: client, fallback: fallback}
}

// Quote returns a model-generated quote, or a built-in one when the
// model is unreachable.
func (g *Gemini) Quote(ctx context.Context) (string, error) {
	if g.client == nil {
		return g.fallback.Quote(ctx)
	}

	chat, err := g.client.Chats.Create(ctx, geminiModel, nil, nil)
	if err != nil {
		slog.Debug("failed to start gemini chat", "error", err)
		return g.fallback.Quote(ctx)
	}

	resp, err := chat.Send(ctx, &genai.Part{Text: geminiPrompt})
	if err != nil {
		slog.Debug("gemini request failed", "error", err)
		return g.fallback.Quote(ctx)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return g.fallback.Quote(ctx)
	}

	text := clean(resp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return g.fallback.Quote(ctx)
	}
	return text, nil
}
