package shopcrawl

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// productPayload mirrors the JSON object a semantic extraction backend
// returns. Every field is optional and loosely typed; nothing is trusted
// as a fully-typed record until it is defaulted field by field.
type productPayload struct {
	ID           any              `json:"id"`
	GID          *string          `json:"gid"`
	Vendor       *string          `json:"vendor"`
	Type         *string          `json:"type"`
	Price        any              `json:"price"`
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Availability *string          `json:"availability"`
	Tags         []string         `json:"tags"`
	Images       []string         `json:"images"`
	Weight       any              `json:"weight"`
	Dimensions   any              `json:"dimensions"`
	TaxInfo      any              `json:"tax_info"`
	Reviews      []reviewPayload  `json:"reviews"`
	Variants     []variantPayload `json:"variants"`
}

type reviewPayload struct {
	Rating any     `json:"rating"`
	Text   *string `json:"text"`
}

type variantPayload struct {
	ID           any               `json:"id"`
	Name         *string           `json:"name"`
	SKU          *string           `json:"sku"`
	Price        any               `json:"price"`
	Availability *string           `json:"availability"`
	Image        *string           `json:"image"`
	Options      map[string]string `json:"options"`
}

// ParseProductJSON parses a semantic backend response into a product
// record. It scans for the first well-formed JSON object substring in the
// response, so surrounding prose or code fences do not break parsing.
// Returns an EINVALID error when no usable JSON object is found.
func ParseProductJSON(response, url string) (*Product, error) {
	raw, ok := firstJSONObject(response)
	if !ok {
		return nil, Errorf(EINVALID, "no JSON object in extraction response for %s", url)
	}

	var payload productPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, Errorf(EINVALID, "malformed extraction JSON for %s: %s", url, err)
	}

	p := &Product{
		ID:           anyString(payload.ID),
		GID:          stringValue(payload.GID),
		Vendor:       stringValue(payload.Vendor),
		Type:         stringValue(payload.Type),
		PriceCents:   anyPriceCents(payload.Price),
		Name:         stringValue(payload.Name),
		Description:  stringValue(payload.Description),
		Availability: ParseAvailability(stringValue(payload.Availability)),
		Tags:         payload.Tags,
		Images:       payload.Images,
		Weight:       anyString(payload.Weight),
		Dimensions:   anyString(payload.Dimensions),
		TaxInfo:      anyString(payload.TaxInfo),
		URL:          url,
	}

	for _, r := range payload.Reviews {
		p.Reviews = append(p.Reviews, Review{
			Rating: anyFloat(r.Rating),
			Text:   stringValue(r.Text),
		})
	}

	for _, v := range payload.Variants {
		p.Variants = append(p.Variants, Variant{
			ID:           anyString(v.ID),
			Name:         stringValue(v.Name),
			SKU:          stringValue(v.SKU),
			PriceCents:   anyPriceCents(v.Price),
			Availability: ParseAvailability(stringValue(v.Availability)),
			Image:        stringValue(v.Image),
			Options:      v.Options,
		})
	}

	return p, nil
}

// firstJSONObject returns the substring from the first '{' to the last '}'.
// The bool result is false when the text contains no such span.
func firstJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// anyString renders a loosely-typed payload value as a string.
// Numeric identifiers are rendered without a decimal point.
func anyString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// anyPriceCents interprets a loosely-typed price value as integer cents.
// Numbers are taken as already-in-cents per the prompt contract; strings
// are parsed as displayed price text. Anything else normalizes to 0.
func anyPriceCents(v any) int {
	switch t := v.(type) {
	case float64:
		if t < 0 {
			return 0
		}
		return int(math.Round(t))
	case string:
		return ParsePriceCents(t)
	default:
		return 0
	}
}

func anyFloat(v any) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return 0
}
