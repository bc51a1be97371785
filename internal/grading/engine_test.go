package grading

import (
	"homework_check_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(pairs ...any) []model.AnswerKey {
	var out []model.AnswerKey
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, model.AnswerKey{
			QuestionNumber: pairs[i].(int),
			CorrectAnswer:  pairs[i+1].(string),
			QuestionType:   model.MultipleChoice,
		})
	}
	return out
}

func submission(answers []string, numbers []int, score int) *model.Submission {
	return &model.Submission{
		Answers:         answers,
		QuestionNumbers: numbers,
		Score:           score,
		TotalQuestions:  len(answers),
	}
}

func TestScore(t *testing.T) {
	k := keys(1, "A", 2, "B, C", 3, "d")

	score, err := Score(k, []string{"a", "c,b", "x"})
	require.NoError(t, err)
	assert.Equal(t, 2, score)

	score, err = Score(k, []string{"", "", ""})
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestScoreRejectsBadShape(t *testing.T) {
	_, err := Score(nil, []string{"a"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = Score(nil, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = Score(keys(1, "a", 2, "b"), []string{"a"})
	assert.ErrorIs(t, err, ErrAnswerCountMismatch)
}

func TestScoreEssayKeepsOrder(t *testing.T) {
	k := []model.AnswerKey{{QuestionNumber: 1, CorrectAnswer: "Red, Blue", QuestionType: model.Essay}}

	score, _ := Score(k, []string{"red, blue"})
	assert.Equal(t, 1, score)

	score, _ = Score(k, []string{"blue, red"})
	assert.Equal(t, 0, score)
}

func TestSnapshot(t *testing.T) {
	assert.Equal(t, []int{1, 2, 5}, Snapshot(keys(1, "a", 2, "b", 5, "c")))
	assert.Empty(t, Snapshot(nil))
}

func TestShapeMatches(t *testing.T) {
	k := keys(1, "a", 2, "b")

	assert.True(t, ShapeMatches(submission([]string{"a", "b"}, []int{1, 2}, 2), k))
	assert.False(t, ShapeMatches(submission([]string{"a", "b"}, []int{1, 3}, 2), k))
	assert.False(t, ShapeMatches(submission([]string{"a"}, []int{1}, 1), k))

	// legacy rows without a snapshot compare by length only
	assert.True(t, ShapeMatches(submission([]string{"x", "y"}, nil, 0), k))
	assert.False(t, ShapeMatches(submission([]string{"x"}, nil, 0), k))

	// an empty snapshot is not the same as a missing one
	assert.False(t, ShapeMatches(submission([]string{"a", "b"}, []int{}, 0), k))
}

func TestRegrade(t *testing.T) {
	sub := submission([]string{"3", "4"}, []int{1, 2}, 2)

	score, changed, eligible := Regrade(sub, keys(1, "3", 2, "4"))
	assert.True(t, eligible)
	assert.False(t, changed)
	assert.Equal(t, 2, score)

	score, changed, eligible = Regrade(sub, keys(1, "3", 2, "5"))
	assert.True(t, eligible)
	assert.True(t, changed)
	assert.Equal(t, 1, score)
}

func TestRegradeSkipsChangedShape(t *testing.T) {
	sub := submission([]string{"3", "4"}, []int{1, 2}, 2)

	score, changed, eligible := Regrade(sub, keys(1, "3", 2, "4", 3, "5"))
	assert.False(t, eligible)
	assert.False(t, changed)
	assert.Equal(t, 2, score)

	_, _, eligible = Regrade(sub, nil)
	assert.False(t, eligible)
}

func TestRegradeIsIdempotent(t *testing.T) {
	k := keys(1, "a", 2, "b")
	sub := submission([]string{"a", "c"}, []int{1, 2}, 2)

	score, changed, _ := Regrade(sub, k)
	require.True(t, changed)
	sub.Score = score

	_, changed, _ = Regrade(sub, k)
	assert.False(t, changed)
}
