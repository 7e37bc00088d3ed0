package gemini_test

import (
	"context"
	"testing"

	"github.com/shopcrawl/shopcrawl"
	"github.com/shopcrawl/shopcrawl/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_RequiresURL(t *testing.T) {
	t.Parallel()

	e := gemini.NewExtractor(nil, "") // nil client ok for validation paths

	_, err := e.Extract(context.Background(), shopcrawl.Page{HTML: "<html></html>"})

	require.Error(t, err)
	assert.Equal(t, shopcrawl.EINVALID, shopcrawl.ErrorCode(err))
	assert.Contains(t, shopcrawl.ErrorMessage(err), "URL required")
}

func TestExtractor_Extract_RequiresContent(t *testing.T) {
	t.Parallel()

	e := gemini.NewExtractor(nil, "")

	_, err := e.Extract(context.Background(), shopcrawl.Page{URL: "https://shop.example.com/products/x"})

	require.Error(t, err)
	assert.Equal(t, shopcrawl.EINVALID, shopcrawl.ErrorCode(err))
}

func TestBuildConfig_Deterministic(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.Zero(t, *config.Temperature)
	require.NotNil(t, config.SystemInstruction)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "data extraction expert")
	assert.Positive(t, config.MaxOutputTokens)
}
