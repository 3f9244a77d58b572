package entities

import "time"

type Well struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	UserID     uint     `gorm:"index" json:"user_id"`
	Name       string   `gorm:"size:100" json:"name"`
	FieldName  string   `gorm:"size:100" json:"field_name,omitempty"`
	Location   string   `gorm:"size:200" json:"location,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	DepthTotal *float64 `json:"depth_total,omitempty"` // meters
	Status     string   `gorm:"default:active" json:"status"` // active|drilling|abandoned
	Description string  `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Not persisted: filled by detail/list handlers.
	LogsCount  *int64 `gorm:"-" json:"logs_count,omitempty"`
	ZonesCount *int64 `gorm:"-" json:"zones_count,omitempty"`
}

var WellStatuses = []string{"active", "drilling", "abandoned"}
