package services

import (
	"testing"

	"event-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmBookingCreatesBusyDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	pkgID := seedPackage(t, db, "Premium")

	id, err := svc.Create(newBookingInput(pkgID, "2025-06-01"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(id, models.StatusConfirmed))

	var count int64
	require.NoError(t, db.Model(&models.BusyDate{}).
		Where("date = ?", mustDate(t, "2025-06-01")).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	requireBusyInvariant(t, db)
}

func TestConfirmTwiceIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	pkgID := seedPackage(t, db, "Premium")

	id, err := svc.Create(newBookingInput(pkgID, "2025-06-01"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(id, models.StatusConfirmed))
	require.NoError(t, svc.UpdateStatus(id, models.StatusConfirmed))

	var count int64
	require.NoError(t, db.Model(&models.BusyDate{}).
		Where("date = ?", mustDate(t, "2025-06-01")).Count(&count).Error)
	assert.EqualValues(t, 1, count, "double confirm must leave exactly one busy date row")
	requireBusyInvariant(t, db)
}

// Two bookings share a date: rejecting one confirmed booking keeps the date
// busy while the other remains confirmed; rejecting both releases it.
func TestSharedDateReleasedOnlyWhenLastConfirmedGoes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	pkgID := seedPackage(t, db, "Premium")
	date := mustDate(t, "2025-06-01")

	b1, err := svc.Create(newBookingInput(pkgID, "2025-06-01"))
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(b1, models.StatusConfirmed))

	b2, err := svc.Create(newBookingInput(pkgID, "2025-06-01"))
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(b2, models.StatusConfirmed))

	require.NoError(t, svc.UpdateStatus(b1, models.StatusRejected))
	var count int64
	require.NoError(t, db.Model(&models.BusyDate{}).Where("date = ?", date).Count(&count).Error)
	assert.EqualValues(t, 1, count, "date must stay busy while B2 is confirmed")
	requireBusyInvariant(t, db)

	require.NoError(t, svc.UpdateStatus(b2, models.StatusRejected))
	require.NoError(t, db.Model(&models.BusyDate{}).Where("date = ?", date).Count(&count).Error)
	assert.Zero(t, count, "date must be released once no confirmed booking remains")
	requireBusyInvariant(t, db)
}

func TestDeleteConfirmedBookingReleasesDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	pkgID := seedPackage(t, db, "Premium")

	id, err := svc.Create(newBookingInput(pkgID, "2025-06-01"))
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(id, models.StatusConfirmed))

	require.NoError(t, svc.Delete(id))

	var count int64
	require.NoError(t, db.Model(&models.BusyDate{}).Count(&count).Error)
	assert.Zero(t, count)
	requireBusyInvariant(t, db)
}

func TestDeletePendingBookingLeavesBusyDatesAlone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	pkgID := seedPackage(t, db, "Premium")

	confirmed, err := svc.Create(newBookingInput(pkgID, "2025-06-01"))
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(confirmed, models.StatusConfirmed))

	pending, err := svc.Create(newBookingInput(pkgID, "2025-06-01"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(pending))

	var count int64
	require.NoError(t, db.Model(&models.BusyDate{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	requireBusyInvariant(t, db)
}

func TestPendingToRejectedIsNoop(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	pkgID := seedPackage(t, db, "Premium")

	id, err := svc.Create(newBookingInput(pkgID, "2025-06-01"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(id, models.StatusRejected))

	var count int64
	require.NoError(t, db.Model(&models.BusyDate{}).Count(&count).Error)
	assert.Zero(t, count)
	requireBusyInvariant(t, db)
}

func TestBusyDateOverview(t *testing.T) {
	db := setupTestDB(t)
	bookingSvc := NewBookingService(db)
	busySvc := NewBusyDateService(db)
	pkgID := seedPackage(t, db, "Premium")

	first := newBookingInput(pkgID, "2025-06-02")
	first.FullName = "Alex Stone"
	id1, err := bookingSvc.Create(first)
	require.NoError(t, err)
	require.NoError(t, bookingSvc.UpdateStatus(id1, models.StatusConfirmed))

	second := newBookingInput(pkgID, "2025-06-01")
	second.FullName = "Billie Frost"
	id2, err := bookingSvc.Create(second)
	require.NoError(t, err)
	require.NoError(t, bookingSvc.UpdateStatus(id2, models.StatusConfirmed))

	// A pending booking on a busy date must not show up in the overview.
	_, err = bookingSvc.Create(newBookingInput(pkgID, "2025-06-01"))
	require.NoError(t, err)

	views, err := busySvc.Overview()
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "2025-06-01", views[0].Date)
	require.Len(t, views[0].Bookings, 1)
	assert.Equal(t, "Billie Frost", views[0].Bookings[0].FullName)
	assert.Equal(t, "Premium", views[0].Bookings[0].PackageName)

	assert.Equal(t, "2025-06-02", views[1].Date)
	require.Len(t, views[1].Bookings, 1)
	assert.Equal(t, "Alex Stone", views[1].Bookings[0].FullName)
}
