package model

// swagger:model Settings
type Settings struct {
	UUIDBase
	AppTitle            string `gorm:"size:255" json:"appTitle"`
	HighScoreMessage    string `gorm:"type:text" json:"highScoreMessage"`
	LowScoreMessage     string `gorm:"type:text" json:"lowScoreMessage"`
	PerfectScoreMessage string `gorm:"type:text" json:"perfectScoreMessage"`
}

func (Settings) TableName() string {
	return "settings"
}

// swagger:model EncouragementRange
type EncouragementRange struct {
	UUIDBase
	MinScore     int    `gorm:"not null" json:"minScore"`
	MaxScore     int    `gorm:"not null" json:"maxScore"`
	Message      string `gorm:"type:text;not null" json:"message"`
	DisplayOrder int    `gorm:"default:0;index" json:"displayOrder"`
}

func (EncouragementRange) TableName() string {
	return "encouragement_ranges"
}
