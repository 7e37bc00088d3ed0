// Package gemini implements semantic product extraction using Google Gemini.
package gemini

import (
	"context"

	"github.com/shopcrawl/shopcrawl"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for extraction.
const DefaultModel = "gemini-2.5-flash"

// maxOutputTokens bounds the size of the extraction response.
const maxOutputTokens = 2000

// Ensure Extractor implements shopcrawl.Extractor at compile time.
var _ shopcrawl.Extractor = (*Extractor)(nil)

// Extractor implements shopcrawl.Extractor using Google Gemini.
type Extractor struct {
	client *genai.Client
	model  string
}

// NewExtractor creates a new Extractor. An empty model selects DefaultModel.
func NewExtractor(client *genai.Client, model string) *Extractor {
	if model == "" {
		model = DefaultModel
	}
	return &Extractor{client: client, model: model}
}

// Extract sends the page markup to Gemini with the fixed extraction
// contract and parses the product JSON out of the response.
func (e *Extractor) Extract(ctx context.Context, page shopcrawl.Page) (*shopcrawl.Product, error) {
	if page.URL == "" {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "page URL required")
	}
	if page.HTML == "" {
		return nil, shopcrawl.Errorf(shopcrawl.EINVALID, "page content required")
	}

	prompt := shopcrawl.BuildExtractionPrompt(page.HTML)

	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, shopcrawl.Errorf(shopcrawl.EUNAVAILABLE, "gemini extraction for %s: %s", page.URL, err)
	}
	if result == nil {
		return nil, shopcrawl.Errorf(shopcrawl.EINTERNAL, "gemini returned nil result")
	}

	return shopcrawl.ParseProductJSON(result.Text(), page.URL)
}

// BuildConfig returns the GenerateContentConfig for extraction calls.
// Temperature is pinned to zero so repeated runs extract reproducibly.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: shopcrawl.SystemInstruction}},
		},
		Temperature:     &temp,
		MaxOutputTokens: maxOutputTokens,
	}
}
