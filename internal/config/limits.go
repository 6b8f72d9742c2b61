package config

import "time"

const (
	// ChatMaxTokens bounds the length of a single provider reply. The
	// assistant answers short portfolio questions; 500 tokens is plenty.
	ChatMaxTokens = 500

	// ChatTemperature favors some variability over determinism so repeated
	// questions don't produce word-for-word identical answers.
	ChatTemperature = 0.7

	// ChatTimeout bounds the outbound provider call. Past this the request
	// takes the fallback apology path.
	ChatTimeout = 30 * time.Second

	// MaxProjectTitleLength keeps catalog titles short and descriptive.
	MaxProjectTitleLength = 255

	// Seeded records span 2016-2020; the bounds just reject nonsense years
	// without constraining future entries.
	MinProjectYear = 1990
	MaxProjectYear = 2100
)
