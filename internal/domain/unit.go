package domain

import "time"

// Unit is a rentable property owned by a tenant.
type Unit struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	OwnerID   string    `gorm:"type:varchar(12);not null;index" json:"owner_id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Unit) TableName() string {
	return "units"
}

// Booking is only read here, to aggregate brand statistics.
type Booking struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	UnitID    string    `gorm:"type:uuid;not null;index" json:"unit_id"`
	OwnerID   string    `gorm:"type:varchar(12);not null;index" json:"owner_id"`
	GuestName string    `gorm:"type:text" json:"guest_name"`
	CheckIn   time.Time `gorm:"type:timestamp with time zone" json:"check_in"`
	CheckOut  time.Time `gorm:"type:timestamp with time zone" json:"check_out"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
