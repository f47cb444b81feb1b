package models

import "time"

// BusyDate rows are derived state: one exists for a date exactly while at
// least one Confirmed booking has that preferred date. Only the reconciler
// in the services layer writes this table.
type BusyDate struct {
	ID   uint      `gorm:"primaryKey" json:"-"`
	Date time.Time `gorm:"column:date;uniqueIndex" json:"date"`
}
