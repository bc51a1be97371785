package grading

import (
	"homework_check_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMultipleChoice(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single", " B ", "b"},
		{"reordered", "B, A", "a,b"},
		{"spacing", " c ,a,  b", "a,b,c"},
		{"numbers sort as strings", "10, 2", "10,2"},
		{"whitespace only", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeMultipleChoice(tc.in))
		})
	}
}

func TestNormalizeMultipleChoiceIsIdempotent(t *testing.T) {
	for _, in := range []string{"B, A", "10, 2, 1", "  d ", "a,,b"} {
		once := NormalizeMultipleChoice(in)
		assert.Equal(t, once, NormalizeMultipleChoice(once), in)
	}
}

func TestNormalizeShortAnswer(t *testing.T) {
	assert.Equal(t, "", NormalizeShortAnswer(""))
	assert.Equal(t, "photosynthesis", NormalizeShortAnswer("  Photosynthesis "))
	// commas are not reordered for essays
	assert.Equal(t, "b, a", NormalizeShortAnswer("B, A"))
}

func TestNormalizeDispatchesOnType(t *testing.T) {
	assert.Equal(t, "b, a", Normalize("B, A", model.Essay))
	assert.Equal(t, "a,b", Normalize("B, A", model.MultipleChoice))
	assert.Equal(t, "a,b", Normalize("B, A", ""))
	assert.Equal(t, "a,b", Normalize("B, A", "true-false"))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("a, b", "B,A", model.MultipleChoice))
	assert.False(t, Equal("a, b", "B,A", model.Essay))
	assert.True(t, Equal(" Paris", "paris ", model.Essay))
	assert.False(t, Equal("", "a", model.MultipleChoice))
}
