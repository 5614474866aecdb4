package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Email       string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PhoneNumber *string `gorm:"type:varchar(20)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
