package models

import (
	"time"

	"gorm.io/datatypes"
)

// EventPackage is read-only from the booking flow; rows are seeded at startup.
// WhatIncluded holds a JSON array of strings.
type EventPackage struct {
	ID           uint           `gorm:"primaryKey" json:"package_id"`
	PackageName  string         `gorm:"size:255" json:"package_name"`
	Description  string         `gorm:"type:text" json:"description"`
	Price        float64        `json:"price"`
	WhatIncluded datatypes.JSON `gorm:"column:what_included" json:"what_included"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
