package entity

// EditedAuthorPlaceholder replaces the author of every note that goes
// through an update, whoever submitted the edit.
const EditedAuthorPlaceholder = "testtesttest"

type Note struct {
	ID          int        `gorm:"primaryKey"`
	Title       string     `gorm:"type:text"`
	Body        string     `gorm:"type:text"`
	Author      string     `gorm:"type:text"`
	PublishedAt int64      `gorm:"not null"`
	ViewNum     int        `gorm:"not null;default:0"`
	CommentNum  int        `gorm:"not null;default:0"`
	Permission  Permission `gorm:"not null;default:0"`
}
