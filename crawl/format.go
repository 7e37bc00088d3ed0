package crawl

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash hashes page content with xxhash. The hash is stored with
// catalog rows so re-crawls can tell whether a page changed.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// TruncateURL shortens a URL for display, keeping the end which is more
// informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
