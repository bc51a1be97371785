package grading

import (
	"homework_check_backend/internal/model"
	"sort"
	"strings"
)

// NormalizeMultipleChoice folds case, trims, and orders comma separated
// choices so that "B, A" and "a,b" compare equal. Tokens sort as strings,
// so "10, 2" becomes "10,2".
func NormalizeMultipleChoice(raw string) string {
	if raw == "" {
		return ""
	}
	parts := strings.Split(strings.TrimSpace(strings.ToLower(raw)), ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

// NormalizeShortAnswer trims and lowercases free text.
func NormalizeShortAnswer(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(raw))
}

// Normalize picks the normalizer for a question type. Anything that is not
// an essay is graded as multiple choice.
func Normalize(raw string, qt model.QuestionType) string {
	if qt == model.Essay {
		return NormalizeShortAnswer(raw)
	}
	return NormalizeMultipleChoice(raw)
}

// Equal reports whether two answers match under the normalizer for qt.
func Equal(a, b string, qt model.QuestionType) bool {
	return Normalize(a, qt) == Normalize(b, qt)
}
