package entity

import "time"

// NotificationTypeSMS is the channel name recorded for text message deliveries.
const NotificationTypeSMS = "sms"

// NotificationPreference is a user's standing request to be alerted when a campsite
// matching its target becomes available within [StartDate, EndDate).
type NotificationPreference struct {
	ID                 uint      `json:"id"`
	UserID             uint      `json:"user_id"`
	RecreationAreaID   *int64    `json:"recreation_area_id"`
	RecreationAreaName *string   `json:"recreation_area_name"`
	CampgroundID       *int64    `json:"campground_id"`
	CampgroundName     *string   `json:"campground_name"`
	CampsiteID         *int64    `json:"campsite_id"`
	CampsiteName       *string   `json:"campsite_name"`
	StartDate          Date      `json:"start_date"`
	EndDate            Date      `json:"end_date"`
	PhoneNumber        string    `json:"phone_number"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// HasValidDateRange reports whether the end date is strictly after the start date.
func (p *NotificationPreference) HasValidDateRange() bool {
	return p.EndDate.After(p.StartDate)
}

// HasTarget reports whether the preference names a campground or recreation area to watch.
func (p *NotificationPreference) HasTarget() bool {
	return p.CampgroundID != nil || p.RecreationAreaID != nil
}

// NotificationHistory is an immutable record of one delivery attempt.
type NotificationHistory struct {
	ID               uint      `json:"id"`
	UserID           uint      `json:"user_id"`
	PreferenceID     *uint     `json:"preference_id"` // Nil once the preference is deleted.
	CampsiteID       *int64    `json:"campsite_id"`
	CampsiteName     *string   `json:"campsite_name"`
	NotificationType string    `json:"notification_type"`
	Message          string    `json:"message"`
	SentAt           time.Time `json:"sent_at"`
	Success          bool      `json:"success"`
	ErrorMessage     *string   `json:"error_message"`
}
