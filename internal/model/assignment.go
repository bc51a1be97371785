package model

// swagger:model Assignment
type Assignment struct {
	UUIDBase
	Title       string  `gorm:"size:255;not null" json:"title"`
	FolderID    *string `gorm:"index;type:varchar(36)" json:"folderId"`
	SortOrder   int     `gorm:"default:0;index" json:"sortOrder"`
	Completed   bool    `gorm:"default:false" json:"completed"`
	ShowAnswers bool    `gorm:"not null" json:"showAnswers"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// AssignmentClass 作业与班级的关联
type AssignmentClass struct {
	AssignmentID string `gorm:"primaryKey;type:varchar(36)" json:"assignmentId"`
	ClassID      string `gorm:"primaryKey;type:varchar(36);index" json:"classId"`
}

func (AssignmentClass) TableName() string {
	return "assignment_classes"
}

// AssignmentWithClasses is the API shape of an assignment.
type AssignmentWithClasses struct {
	Assignment
	ClassIDs []string `json:"classIds"`
}
