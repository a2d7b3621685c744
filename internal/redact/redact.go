package redact

import (
	"path"
	"regexp"
	"strings"
)

// Placeholder replaces every redacted value or match.
const Placeholder = "[REDACTED]"

// secretPatterns are regex heuristics for common secret types.
var secretPatterns = []*regexp.Regexp{
	// Generic API keys (long hex/base64 strings after common key patterns)
	regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{20,})["']?`),
	// AWS access key IDs
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	// Secrets/tokens/passwords embedded in a value
	regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["']?([^"'\s]{8,})["']?`),
	// Bearer tokens
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`),
	// JWTs
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	// Private key blocks
	regexp.MustCompile(`-----BEGIN\s+(RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE KEY-----`),
	// GitHub tokens
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
	// Slack tokens
	regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`),
	// Anthropic API keys
	regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`),
	// OpenAI API keys
	regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`),
	// URLs with inline credentials
	regexp.MustCompile(`[a-z][a-z0-9+.-]*://[^/\s:@]+:[^/\s@]+@`),
}

// sensitiveWords mark an item name whose whole value is secret. Names are
// normalized to lowercase with separators removed before matching.
var sensitiveWords = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"apikey",
	"credential",
	"privatekey",
	"streamkey",
}

// authSuffixes follow a leading "auth" in names that hold credentials.
var authSuffixes = []string{"key", "token", "pass", "secret", "header", "code"}

// Secrets replaces detected secrets in text with [REDACTED].
func Secrets(text string) string {
	result := text
	for _, pat := range secretPatterns {
		result = pat.ReplaceAllLiteralString(result, Placeholder)
	}
	return result
}

// IsSensitiveKey reports whether an item name suggests its value is secret.
func IsSensitiveKey(name string) bool {
	n := normalize(name)
	for _, w := range sensitiveWords {
		if strings.Contains(n, w) {
			return true
		}
	}
	// "auth" alone or at the end, as in "ProxyAuth".
	if strings.HasSuffix(n, "auth") {
		return true
	}
	if rest, ok := strings.CutPrefix(n, "auth"); ok {
		for _, suffix := range authSuffixes {
			if strings.HasPrefix(rest, suffix) {
				return true
			}
		}
	}
	return false
}

// MatchesKey reports whether "section.name" matches any of the glob patterns.
// Matching is case-insensitive, like item lookup.
func MatchesKey(sec, name string, patterns []string) bool {
	key := strings.ToLower(sec + "." + name)
	for _, pattern := range patterns {
		matched, err := path.Match(strings.ToLower(pattern), key)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// Value returns the display form of an item's value: fully redacted for
// sensitive or matching keys, otherwise with embedded secrets replaced.
func Value(sec, name, value string, patterns []string) string {
	if value == "" {
		return value
	}
	if IsSensitiveKey(name) || MatchesKey(sec, name, patterns) {
		return Placeholder
	}
	return Secrets(value)
}

func normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
