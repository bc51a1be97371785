package model

// swagger:model Folder
type Folder struct {
	UUIDBase
	Name      string `gorm:"size:255;not null" json:"name"`
	Completed bool   `gorm:"default:false" json:"completed"`
	SortOrder int    `gorm:"default:0;index" json:"sortOrder"`
}

func (Folder) TableName() string {
	return "folders"
}
