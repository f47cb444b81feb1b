package models

import (
	"time"
)

// BookingStatus is a closed set; anything else is rejected at the boundary.
type BookingStatus string

const (
	StatusPendingReview BookingStatus = "Pending Review"
	StatusConfirmed     BookingStatus = "Confirmed"
	StatusRejected      BookingStatus = "Rejected"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPendingReview, StatusConfirmed, StatusRejected:
		return true
	}
	return false
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"booking_id"`

	PackageID              uint          `gorm:"column:package_id;index;not null" json:"package_id"`
	FullName               string        `gorm:"size:255" json:"full_name"`
	PhoneNumber            string        `gorm:"size:32" json:"phone_number"`
	EmailAddress           string        `gorm:"size:255" json:"email_address"`
	PreferredDate          time.Time     `gorm:"column:preferred_date;index" json:"-"`
	Location               string        `gorm:"size:255" json:"location"`
	ExpectedGuests         *int          `gorm:"column:expected_guests" json:"expected_guests,omitempty"`
	AdditionalRequirements *string       `gorm:"column:additional_requirements;type:text" json:"additional_requirements,omitempty"`
	Status                 BookingStatus `gorm:"size:32;index;default:'Pending Review'" json:"status"`
	BookingDate            time.Time     `gorm:"column:booking_date;autoCreateTime" json:"-"`

	Package EventPackage `gorm:"foreignKey:PackageID;references:ID" json:"-"`
}
