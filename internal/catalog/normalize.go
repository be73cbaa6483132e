package catalog

import (
	"strings"
	"unicode"
)

// contextWindowSuffixes are the ":"-delimited suffixes Bedrock appends to a
// model id for a context-window variant (e.g. "anthropic.claude-v2:200k").
var contextWindowSuffixes = map[string]bool{
	"28k":   true,
	"200k":  true,
	"8k":    true,
	"48k":   true,
	"12k":   true,
	"512":   true,
	"24k":   true,
	"300k":  true,
	"128k":  true,
	"1000k": true,
	"mm":    true,
}

// NormalizeModelID strips a trailing context-window suffix from a model id.
// Ids without a recognized suffix are returned unchanged.
func NormalizeModelID(modelID string) string {
	idx := strings.LastIndex(modelID, ":")
	if idx < 0 {
		return modelID
	}
	if contextWindowSuffixes[modelID[idx+1:]] {
		return modelID[:idx]
	}
	return modelID
}

// criPrefixes are the routing prefixes an inference profile id can carry.
var criPrefixes = []string{"us.", "eu.", "jp.", "au.", "global."}

// ExtractCRIInfo splits an inference profile id into its upper-cased routing
// prefix and the base model id. Both results are empty when the id carries
// no known prefix.
func ExtractCRIInfo(profileID string) (criType, baseID string) {
	for _, prefix := range criPrefixes {
		if strings.HasPrefix(profileID, prefix) {
			return strings.ToUpper(strings.TrimSuffix(prefix, ".")), profileID[len(prefix):]
		}
	}
	return "", ""
}

// TitleProvider derives a display provider name from a model id by
// title-casing its first dot-segment ("anthropic.claude-v2" -> "Anthropic").
func TitleProvider(modelID string) string {
	segment, _, _ := strings.Cut(modelID, ".")

	var b strings.Builder
	b.Grow(len(segment))
	prevLetter := false
	for _, r := range segment {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}
