// Package redact hides secret values before configuration is displayed.
//
// A value is hidden entirely when its item name looks sensitive (password,
// token, api key and similar) or when "section.name" matches one of the
// caller's glob patterns. Other values are scanned with regex heuristics
// covering common secret shapes: API keys, JWTs, private keys, AWS access
// keys, bearer tokens and provider-specific tokens (Anthropic, OpenAI,
// GitHub, Slack). Matches are replaced with [REDACTED].
package redact
