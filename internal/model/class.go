package model

// swagger:model Class
type Class struct {
	UUIDBase
	Name      string `gorm:"size:255;not null" json:"name"`
	Completed bool   `gorm:"default:false" json:"completed"`
	Hidden    bool   `gorm:"default:false" json:"hidden"`
	SortOrder int    `gorm:"default:0;index" json:"sortOrder"`
}

func (Class) TableName() string {
	return "classes"
}
