package moderation

import (
	"log/slog"
	"petspace/errors"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"hairball", "squirrel"}
	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "The hairball is here",
			expected: "The ******** is here",
			words:    []string{"hairball"},
		},
		{
			name:     "Multiple occurrences",
			input:    "squirrel squirrel",
			expected: "******** ********",
			words:    []string{"squirrel", "squirrel"},
		},
		{
			name:     "Uppercase and noise",
			input:    "S-Q-U-I-R-R-E-L ahead",
			expected: "*************** ahead",
			words:    []string{"squirrel"},
		},
		{
			name:     "Word adjacent to trailing punctuation",
			input:    "Look, a squirrel!",
			expected: "Look, a ********!",
			words:    []string{"squirrel"},
		},
		{
			name:     "Nothing to censor",
			input:    "Dogorithm is amazing",
			expected: "Dogorithm is amazing",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestModerator_NoiseOnlyDictionary(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a dictionary made of noise only
	_, err := NewModerator([]string{"...", ",,,", ""}, replacementChar, log)

	// Then the moderator refuses to build
	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestModerator_SkipsNoiseEntries(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	mod, err := NewModerator([]string{"...", "hairball"}, replacementChar, log)
	req.NoError(err)

	content, words := mod.Censor("Hello ...")
	req.Equal("Hello ...", content)
	req.Nil(words)
}
