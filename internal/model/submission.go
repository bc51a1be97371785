package model

import (
	"time"

	"gorm.io/datatypes"
)

// swagger:model Submission
type Submission struct {
	UUIDBase
	ClassID        string                      `gorm:"index;type:varchar(36);not null" json:"classId"`
	AssignmentID   string                      `gorm:"index;type:varchar(36);not null" json:"assignmentId"`
	StudentName    string                      `gorm:"size:255;not null" json:"studentName"`
	Answers        datatypes.JSONSlice[string] `json:"answers"`
	Score          int                         `gorm:"not null" json:"score"`
	TotalQuestions int                         `gorm:"not null" json:"totalQuestions"`
	// QuestionNumbers 为提交时答案键的题号快照；旧数据为 NULL
	QuestionNumbers []int     `gorm:"serializer:json" json:"questionNumbers"`
	SubmittedAt     time.Time `gorm:"autoCreateTime;index" json:"submittedAt"`
}

func (Submission) TableName() string {
	return "submissions"
}
