// Package langdetect resolves the language of fenced code blocks.
// Fence info strings are normalized through go-enry's alias table so the
// decorator hands the host a canonical highlight hint ("golang" becomes
// "go"); unlabeled fences fall back to content-based detection.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// langText is the fallback when no language can be determined.
const langText = "text"

// Normalize canonicalizes a fence info string to a lowercase language name.
// Unknown aliases are returned lowercased as-is so hosts can still route
// them; an empty info string yields "".
func Normalize(info string) string {
	info = strings.TrimSpace(info)
	if info == "" {
		return ""
	}

	// Info strings may carry attributes after the language ("go linenums").
	name := info
	if idx := strings.IndexAny(name, " \t"); idx >= 0 {
		name = name[:idx]
	}

	if lang, ok := enry.GetLanguageByAlias(name); ok {
		return strings.ToLower(lang)
	}

	return strings.ToLower(name)
}

// Detect returns the detected language for fence content with no info
// string. Returns "text" if detection fails or confidence is low.
func Detect(content []byte) string {
	if len(content) == 0 {
		return langText
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return strings.ToLower(lang)
	}

	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript",
		"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
		"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
	}

	// Only trust the classifier when it reports high confidence.
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return strings.ToLower(lang)
	}

	return langText
}
