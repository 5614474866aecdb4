package model

import "time"

// NotificationPreferenceModel mirrors the 'notification_preferences' table.
type NotificationPreferenceModel struct {
	ID                 uint       `gorm:"primaryKey;autoIncrement"`
	UserID             uint       `gorm:"not null;index"`
	User               *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RecreationAreaID   *int64
	RecreationAreaName *string `gorm:"type:varchar(255)"`
	CampgroundID       *int64
	CampgroundName     *string `gorm:"type:varchar(255)"`
	CampsiteID         *int64
	CampsiteName       *string   `gorm:"type:varchar(255)"`
	StartDate          time.Time `gorm:"type:date;not null"`
	EndDate            time.Time `gorm:"type:date;not null"`
	PhoneNumber        string    `gorm:"type:varchar(20);not null"`
	IsActive           bool      `gorm:"not null;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferenceModel) TableName() string {
	return "notification_preferences"
}

// NotificationHistoryModel mirrors the 'notification_history' table.
// Rows outlive their preference: the foreign key is set to NULL on delete.
type NotificationHistoryModel struct {
	ID               uint                         `gorm:"primaryKey;autoIncrement"`
	UserID           uint                         `gorm:"not null;index"`
	User             *UserModel                   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PreferenceID     *uint                        `gorm:"index"`
	Preference       *NotificationPreferenceModel `gorm:"foreignKey:PreferenceID;constraint:OnDelete:SET NULL"`
	CampsiteID       *int64
	CampsiteName     *string   `gorm:"type:varchar(255)"`
	NotificationType string    `gorm:"type:varchar(50);not null"`
	Message          string    `gorm:"type:text;not null"`
	SentAt           time.Time `gorm:"not null;index"`
	Success          bool      `gorm:"not null"`
	ErrorMessage     *string   `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationHistoryModel) TableName() string {
	return "notification_history"
}

// All lists every model managed by schema migration, parents first.
func All() []any {
	return []any{
		&UserModel{},
		&NotificationPreferenceModel{},
		&NotificationHistoryModel{},
	}
}
