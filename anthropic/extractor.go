// Package anthropic implements product extraction using the Anthropic
// Messages API. It mirrors the gemini package and serves as an alternate
// backend behind the shopcrawl.Extractor interface.
package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/shopcrawl/shopcrawl"
)

// DefaultModel is the model used when none is specified.
const DefaultModel = "claude-sonnet-4-20250514"

// maxTokens bounds the size of the generated JSON response.
const maxTokens = 2000

// Ensure type implements interface.
var _ shopcrawl.Extractor = (*Extractor)(nil)

// Extractor extracts product data from HTML using Claude.
type Extractor struct {
	client anthropic.Client
	model  string
}

// NewExtractor returns an Extractor backed by the given client.
// If model is empty, DefaultModel is used.
func NewExtractor(client anthropic.Client, model string) *Extractor {
	if model == "" {
		model = DefaultModel
	}
	return &Extractor{client: client, model: model}
}

// Extract sends the page HTML to the Messages API and parses the JSON
// object from the response. Temperature is pinned to zero so repeated
// extractions of the same page agree.
func (e *Extractor) Extract(ctx context.Context, page shopcrawl.Page) (*shopcrawl.Product, error) {
	if page.URL == "" {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "page URL required")
	}
	if strings.TrimSpace(page.HTML) == "" {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "page HTML required")
	}

	prompt := shopcrawl.BuildExtractionPrompt(page.HTML)

	resp, err := e.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(e.model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(0),
		System: []anthropic.TextBlockParam{
			{Text: shopcrawl.SystemInstruction},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "anthropic: %v", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, shopcrawl.Errorf(shopcrawl.EINTERNAL, "anthropic: empty response")
	}

	return shopcrawl.ParseProductJSON(text.String(), page.URL)
}
