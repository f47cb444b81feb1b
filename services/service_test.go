package services

import (
	"testing"
	"time"

	"event-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.EventPackage{},
		&models.Booking{},
		&models.BusyDate{},
	))
	return db
}

func seedPackage(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	pkg := models.EventPackage{
		PackageName:  name,
		Description:  name + " event package",
		Price:        1500,
		WhatIncluded: datatypes.JSON(`["Venue decoration","Sound system"]`),
	}
	require.NoError(t, db.Create(&pkg).Error)
	return pkg.ID
}

func newBookingInput(packageID uint, date string) CreateBookingInput {
	return CreateBookingInput{
		PackageID:     packageID,
		FullName:      "Jamie Rivers",
		PhoneNumber:   "555-0101",
		EmailAddress:  "jamie@example.com",
		PreferredDate: date,
		Location:      "Riverside Hall",
	}
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := parseDate(value)
	require.NoError(t, err)
	return d
}

// requireBusyInvariant checks that a busy date exists for every date exactly
// while at least one confirmed booking holds it.
func requireBusyInvariant(t *testing.T, db *gorm.DB) {
	t.Helper()

	var bookings []models.Booking
	require.NoError(t, db.Find(&bookings).Error)
	confirmed := map[time.Time]bool{}
	for _, b := range bookings {
		if b.Status == models.StatusConfirmed {
			confirmed[b.PreferredDate] = true
		}
	}

	var busyDates []models.BusyDate
	require.NoError(t, db.Find(&busyDates).Error)
	busy := map[time.Time]bool{}
	for _, bd := range busyDates {
		require.False(t, busy[bd.Date], "duplicate busy date row for %v", bd.Date)
		busy[bd.Date] = true
	}

	for d := range confirmed {
		require.True(t, busy[d], "missing busy date for confirmed booking on %v", d)
	}
	for d := range busy {
		require.True(t, confirmed[d], "stale busy date %v with no confirmed booking", d)
	}
}
