package models

import "time"

// Availability is a recurring weekly working window for a single barber.
// Rows are created and deleted whole, never updated in place.
type Availability struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	// 0 = Monday ... 6 = Sunday, applied uniformly at every boundary.
	DayOfWeek int `json:"day_of_week"`

	StartTime string `gorm:"size:8" json:"start_time"`
	EndTime   string `gorm:"size:8" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
