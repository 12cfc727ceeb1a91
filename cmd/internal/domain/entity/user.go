package entity

// User is an account able to read gated notes and publish new ones.
// Passwords are kept as submitted.
type User struct {
	Username   string     `gorm:"primaryKey;type:text"`
	Password   string     `gorm:"not null;type:text"`
	Permission Permission `gorm:"not null;default:1"`
}
