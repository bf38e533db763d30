package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"exact", 5, "exact"},
		{`C:\Users\me\Documents\report.docx`, 15, `...\report.docx`},
		{"abcdef", 3, "def"},
		{"abcdef", 0, ""},
	}
	for _, tt := range tests {
		got := TruncateLeft(tt.input, tt.max)
		assert.Equal(t, tt.want, got)
		assert.LessOrEqual(t, len(got), tt.max)
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "kind  ", PadRight("kind", 6))
	assert.Equal(t, "attributes", PadRight("attributes", 4))
}
