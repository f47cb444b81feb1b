package services

import (
	"fmt"
	"time"

	"event-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BusyDateService reads the derived busy-dates table. Writes to that table
// happen only through the reconcile helpers below, always on the same
// transaction as the booking change that triggered them.
type BusyDateService struct {
	DB *gorm.DB
}

func NewBusyDateService(db *gorm.DB) *BusyDateService {
	return &BusyDateService{DB: db}
}

type BusyDateBooking struct {
	FullName    string `json:"full_name"`
	PackageName string `json:"package_name"`
}

type BusyDateView struct {
	Date     string            `json:"date"`
	Bookings []BusyDateBooking `json:"bookings"`
}

// Overview lists busy dates ascending, each with the confirmed bookings
// occupying it (oldest request first).
func (s *BusyDateService) Overview() ([]BusyDateView, error) {
	var busyDates []models.BusyDate
	if err := s.DB.Order("date ASC").Find(&busyDates).Error; err != nil {
		return nil, fmt.Errorf("failed to list busy dates: %w", err)
	}

	views := make([]BusyDateView, 0, len(busyDates))
	for _, bd := range busyDates {
		var bookings []models.Booking
		err := s.DB.Preload("Package").
			Where("preferred_date = ? AND status = ?", bd.Date, models.StatusConfirmed).
			Order("booking_date ASC").
			Find(&bookings).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load bookings for busy date: %w", err)
		}

		entries := make([]BusyDateBooking, 0, len(bookings))
		for _, b := range bookings {
			entries = append(entries, BusyDateBooking{
				FullName:    b.FullName,
				PackageName: b.Package.PackageName,
			})
		}
		views = append(views, BusyDateView{
			Date:     bd.Date.Format(dateLayout),
			Bookings: entries,
		})
	}
	return views, nil
}

// countConfirmedOnDate must run on the transaction that already wrote the
// status change, so concurrent transitions on the same date serialize on the
// store instead of both observing a stale count.
func countConfirmedOnDate(tx *gorm.DB, date time.Time) (int64, error) {
	var count int64
	err := tx.Model(&models.Booking{}).
		Where("preferred_date = ? AND status = ?", date, models.StatusConfirmed).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}
	return count, nil
}

func upsertBusyDate(tx *gorm.DB, date time.Time) error {
	busy := models.BusyDate{Date: date}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoNothing: true,
	}).Create(&busy).Error
	if err != nil {
		return fmt.Errorf("failed to upsert busy date: %w", err)
	}
	return nil
}

func removeBusyDate(tx *gorm.DB, date time.Time) error {
	if err := tx.Where("date = ?", date).Delete(&models.BusyDate{}).Error; err != nil {
		return fmt.Errorf("failed to remove busy date: %w", err)
	}
	return nil
}

// reconcileStatusChange keeps "busy date exists ⇔ a confirmed booking holds
// that date" true across a status transition. The new status has already
// been written on tx when this runs.
func reconcileStatusChange(tx *gorm.DB, date time.Time, oldStatus, newStatus models.BookingStatus) error {
	if newStatus == models.StatusConfirmed {
		return upsertBusyDate(tx, date)
	}

	if oldStatus == models.StatusConfirmed && newStatus != models.StatusConfirmed {
		remaining, err := countConfirmedOnDate(tx, date)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return removeBusyDate(tx, date)
		}
	}

	// Transitions not touching Confirmed on either side leave busy dates alone.
	return nil
}

// reconcileDeletion runs after a booking row has been deleted on tx.
func reconcileDeletion(tx *gorm.DB, date time.Time, deletedStatus models.BookingStatus) error {
	if deletedStatus != models.StatusConfirmed {
		return nil
	}
	remaining, err := countConfirmedOnDate(tx, date)
	if err != nil {
		return err
	}
	if remaining == 0 {
		return removeBusyDate(tx, date)
	}
	return nil
}
