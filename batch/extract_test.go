package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractQueries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "only whitespace",
			text: "  \n\t\n   ",
			want: nil,
		},
		{
			name: "single query",
			text: "buy widgets",
			want: []string{"buy widgets"},
		},
		{
			name: "trims whitespace per line",
			text: "  foo  \n\tbar\t",
			want: []string{"foo", "bar"},
		},
		{
			name: "drops comments and blank lines",
			text: "foo\n# comment\n\nbar",
			want: []string{"foo", "bar"},
		},
		{
			name: "comment marker after trimming",
			text: "   # still a comment\nfoo",
			want: []string{"foo"},
		},
		{
			name: "preserves order and duplicates",
			text: "b\na\nb",
			want: []string{"b", "a", "b"},
		},
		{
			name: "handles CRLF line endings",
			text: "foo\r\nbar\r\n",
			want: []string{"foo", "bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractQueries(tt.text))
		})
	}
}
