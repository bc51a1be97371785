package model

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	Essay          QuestionType = "essay"
)

// swagger:model AnswerKey
type AnswerKey struct {
	UUIDBase
	AssignmentID   string       `gorm:"type:varchar(36);not null;uniqueIndex:idx_key_assignment_question" json:"assignmentId"`
	QuestionNumber int          `gorm:"not null;uniqueIndex:idx_key_assignment_question" json:"questionNumber"`
	CorrectAnswer  string       `gorm:"type:text" json:"correctAnswer"`
	QuestionType   QuestionType `gorm:"size:32;default:'multiple-choice'" json:"questionType"`
	Comment        *string      `gorm:"type:text" json:"comment"`
}

func (AnswerKey) TableName() string {
	return "answer_keys"
}
