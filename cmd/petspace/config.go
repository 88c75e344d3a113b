package main

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	LogLevel                  string        `env:"LOG_LEVEL,default=INFO"`
	ModerationCharReplacement string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	CensoredWords             string        `env:"CENSORED_WORDS,default=hairball;squirrel"`
	AuditLimit                *int          `env:"AUDIT_LIMIT"`
	SearchLimit               int           `env:"SEARCH_LIMIT,default=10"`
	EnableSearch              bool          `env:"ENABLE_SEARCH,default=true"`
	SinkTimeout               time.Duration `env:"SINK_TIMEOUT,default=2s"`
	Colours                   bool          `env:"COLOURS,default=true"`
}

// CharacterRune returns the single character used to censor words.
func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.ModerationCharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_CHARACTER_REPLACEMENT must be a single character, got %q",
			c.ModerationCharReplacement,
		)
	}
	return r[0], nil
}

// Words splits the semicolon separated dictionary, blanks are dropped.
// go-env reserves commas inside the tag, so the list uses semicolons.
func (c Config) Words() []string {
	var words []string
	for _, w := range strings.Split(c.CensoredWords, ";") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}
