package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "lowercases and drops punctuation",
			in:   "Hello, World! It's fine.",
			want: []string{"hello", "world", "it", "s", "fine"},
		},
		{
			name: "hyphenated words split",
			in:   "waistcoat-pocket",
			want: []string{"waistcoat", "pocket"},
		},
		{
			name: "underscores kept",
			in:   "snake_case stays",
			want: []string{"snake_case", "stays"},
		},
		{
			name: "whitespace only",
			in:   "  \t\n ",
			want: nil,
		},
		{
			name: "unicode punctuation dropped",
			in:   "‘Oh dear!’",
			want: []string{"oh", "dear"},
		},
		{
			name: "accented letters kept whole",
			in:   "Café naïve Zürich",
			want: []string{"café", "naïve", "zürich"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Words(tt.in))
		})
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "splits on terminal plus whitespace",
			in:   "First one. Second one! Third one? Last",
			want: []string{"First one.", "Second one!", "Third one?", "Last"},
		},
		{
			name: "no trailing whitespace keeps final punctuation",
			in:   "Alpha. Beta.",
			want: []string{"Alpha.", "Beta."},
		},
		{
			name: "internal punctuation preserved verbatim",
			in:   "Dr. No said so. (Really.)",
			want: []string{"Dr.", "No said so.", "(Really.)"},
		},
		{
			name: "multiline whitespace separators",
			in:   "One.\n\nTwo.\tThree.",
			want: []string{"One.", "Two.", "Three."},
		},
		{
			name: "single sentence untouched",
			in:   "Only one sentence here.",
			want: []string{"Only one sentence here."},
		},
		{
			name: "blank input",
			in:   "   ",
			want: nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Sentences(tt.in))
		})
	}
}
