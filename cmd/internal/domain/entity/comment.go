package entity

type Comment struct {
	ID          int    `gorm:"primaryKey"`
	BelongTo    int    `gorm:"not null;index"` // References: notes(id), not enforced
	Nickname    string `gorm:"type:text"`
	Body        string `gorm:"type:text"`
	PublishedAt int64  `gorm:"not null"`
}
