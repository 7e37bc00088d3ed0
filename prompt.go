package shopcrawl

import "strings"

// MaxPromptHTML bounds how much page markup is sent to the semantic
// extraction backend in one request.
const MaxPromptHTML = 12000

// SystemInstruction is the fixed system prompt shared by all semantic
// extraction backends.
const SystemInstruction = "You are a data extraction expert. Extract comprehensive product " +
	"information and return only valid JSON. Pay special attention to finding ALL product " +
	"variants, their sizes, colors, prices, and IDs. Look for variant data in select elements, " +
	"data attributes, JSON-LD, and JavaScript variables."

// BuildExtractionPrompt builds the user prompt for semantic product
// extraction. Page markup beyond MaxPromptHTML is dropped to respect
// backend input limits.
func BuildExtractionPrompt(html string) string {
	if len(html) > MaxPromptHTML {
		html = html[:MaxPromptHTML]
	}
	var sb strings.Builder
	sb.WriteString(promptContract)
	sb.WriteString("\n\nHTML Content:\n")
	sb.WriteString(html)
	return sb.String()
}

// promptContract is the field-by-field extraction guidance. The backend
// must return a single JSON object matching the product payload shape.
const promptContract = `Extract comprehensive product information from this Shopify product page HTML. Return ONLY a JSON object with these exact fields:
- id: Numeric product ID (internal Shopify ID)
- gid: Global ID (gid://shopify/Product/...)
- vendor: Brand or manufacturer
- type: Product category/type
- price: Price in cents (e.g., 15000 = $150.00)
- name: Full product name with variant description
- description: Full product description text
- availability: Availability status (in stock, out of stock, pre-order, etc.)
- tags: Array of product tags/categories
- images: Array of image URLs (main product images)
- weight: Product weight if available
- dimensions: Product dimensions if available
- tax_info: Tax/VAT information if available
- reviews: Array of review objects with rating and text if available
- variants: Array of variant objects, each with:
  - id: Variant ID (look for data-variant-id, variant_id, or similar attributes)
  - name: Variant name (e.g., "L / Black")
  - sku: Stock Keeping Unit
  - price: Price in cents
  - availability: Availability status
  - image: Image URL for the variant if available
  - options: Object with size, color, etc. (e.g., {"size": "L", "color": "Black"})

IMPORTANT: Look carefully for variant information in:
- <select> elements with size/color options
- data attributes like data-variant-id, data-option-value
- JSON-LD structured data
- JavaScript variables containing variant data
- Form elements with variant selections

If any field is not found, use null. For arrays, use empty array if none found.
Return ONLY the JSON object, no other text.`
