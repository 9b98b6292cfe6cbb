package domain

import "time"

// Brand is a white-label partner grouping tenants. Counters are denormalized.
type Brand struct {
	ID             string     `gorm:"primaryKey;type:text" json:"id"`
	Name           string     `gorm:"type:text;not null" json:"name"`
	PrimaryColor   string     `gorm:"type:text" json:"primary_color"`
	SecondaryColor string     `gorm:"type:text" json:"secondary_color"`
	SupportEmail   string     `gorm:"type:text" json:"support_email"`
	SupportPhone   string     `gorm:"type:text" json:"support_phone"`
	ClientCount    int64      `gorm:"not null;default:0" json:"client_count"`
	TotalUnits     int64      `gorm:"not null;default:0" json:"total_units"`
	TotalBookings  int64      `gorm:"not null;default:0" json:"total_bookings"`
	StatsUpdatedAt *time.Time `gorm:"type:timestamp with time zone" json:"stats_updated_at,omitempty"`
	CreatedBy      string     `gorm:"type:text" json:"created_by"`
	CreatedAt      time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Brand) TableName() string {
	return "brands"
}

type BrandStats struct {
	ClientCount   int64 `json:"client_count"`
	TotalUnits    int64 `json:"total_units"`
	TotalBookings int64 `json:"total_bookings"`
}
