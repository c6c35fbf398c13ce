package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func values(terms []Term) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.String()
	}
	return out
}

func TestNewTerm_Trims(t *testing.T) {
	term := NewTerm("\t 大谷翔平 \n")
	assert.Equal(t, "大谷翔平", term.String())
	assert.False(t, term.IsEmpty())
	assert.True(t, term.Equals(NewTerm("大谷翔平")))
	assert.True(t, NewTerm("   ").IsEmpty())
}

func TestParseTerms(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		want       []string
	}{
		{name: "one per line", completion: "Rust\nZig\nC", want: []string{"Rust", "Zig", "C"}},
		{name: "trims lines", completion: "  Rust \n\tZig\t", want: []string{"Rust", "Zig"}},
		{name: "crlf", completion: "Rust\r\nZig\r\n", want: []string{"Rust", "Zig"}},
		{name: "drops blank lines", completion: "\n\nRust\n \n\nZig\n\n", want: []string{"Rust", "Zig"}},
		{name: "keeps duplicates", completion: "Rust\nRust", want: []string{"Rust", "Rust"}},
		{name: "phrases", completion: "情報メディア創成学類\nアーロン ジャッジ", want: []string{"情報メディア創成学類", "アーロン ジャッジ"}},
		{name: "empty", completion: "", want: []string{}},
		{name: "whitespace only", completion: " \n\t\n ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, values(ParseTerms(tt.completion)))
		})
	}
}
