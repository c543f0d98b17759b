package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShorten(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		s        string
		limit    int
		ending   string
		wordSafe bool
		want     string
	}{
		{name: "fits", s: "short", limit: 10, want: "short"},
		{name: "exact", s: "0123456789", limit: 10, want: "0123456789"},
		{name: "hard cut", s: "0123456789abc", limit: 10, want: "0123456789"},
		{name: "ending counted", s: "0123456789abc", limit: 10, ending: "...", want: "0123456..."},
		{name: "word safe", s: "hello wonderful world", limit: 10, wordSafe: true, want: "hello"},
		{name: "word safe cut on space", s: "hello worl dxx", limit: 10, wordSafe: true, want: "hello worl"},
		{name: "word safe single word", s: "supercalifragilistic", limit: 10, wordSafe: true, want: "supercalif"},
		{name: "trailing space trimmed", s: "abcd     efgh", limit: 6, want: "abcd"},
		{name: "runes", s: "Příliš žluťoučký kůň", limit: 6, want: "Příliš"},
		{name: "ending longer than limit", s: "abcdef", limit: 2, ending: "...", want: ""},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, shorten(tt.s, tt.limit, tt.ending, tt.wordSafe))
		})
	}
}
