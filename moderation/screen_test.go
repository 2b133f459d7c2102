package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sched-bot/errors"
)

// TestNameScreen_Blocked
// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestNameScreen_Blocked(t *testing.T) {
	req := require.New(t)
	dictionary := []string{"badger", "snake", "mushroom"}
	screen, err := NewNameScreen(dictionary)
	req.NoError(err)

	tests := []struct {
		name    string
		input   string
		blocked bool
	}{
		{
			name:    "Plain blocked word",
			input:   "badger watching club",
			blocked: true,
		},
		{
			name:    "Uppercase",
			input:   "SNAKE handling 101",
			blocked: true,
		},
		{
			name:    "Leet speak and internal punctuation",
			input:   "Look at B.4.d.g.€r !",
			blocked: true,
		},
		{
			name:    "Extreme noise",
			input:   "S-N-A-K-E night",
			blocked: true,
		},
		{
			name:    "Clean name",
			input:   "Trivia Night",
			blocked: false,
		},
		{
			name:    "Empty string",
			input:   "",
			blocked: false,
		},
		{
			name:    "Punctuation only",
			input:   "... ,,, !!!",
			blocked: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.blocked, screen.Blocked(tt.input), "input=%s", tt.input)
		})
	}
}

func TestNameScreen_EmptyDictionary(t *testing.T) {
	req := require.New(t)
	_, err := NewNameScreen(nil)
	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestNameScreen_Default_List(t *testing.T) {
	req := require.New(t)
	screen, err := NewDefaultNameScreen()
	req.NoError(err)

	req.True(screen.Blocked("free crypto scam night"))
	req.False(screen.Blocked("Board Games Evening"))
}
