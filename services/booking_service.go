package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"event-backend/models"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// BookingService wraps *gorm.DB for the booking flow. Every write runs
// inside a single transaction so a failed busy-date adjustment rolls the
// status change back with it.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBookingInput carries the public booking request fields.
type CreateBookingInput struct {
	PackageID              uint    `json:"package_id"`
	FullName               string  `json:"full_name"`
	PhoneNumber            string  `json:"phone_number"`
	EmailAddress           string  `json:"email_address"`
	PreferredDate          string  `json:"preferred_date"`
	Location               string  `json:"location"`
	ExpectedGuests         *int    `json:"expected_guests,omitempty"`
	AdditionalRequirements *string `json:"additional_requirements,omitempty"`
}

func (in CreateBookingInput) validate() error {
	if in.PackageID == 0 ||
		strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.PhoneNumber) == "" ||
		strings.TrimSpace(in.EmailAddress) == "" ||
		strings.TrimSpace(in.PreferredDate) == "" ||
		strings.TrimSpace(in.Location) == "" {
		return ErrMissingFields
	}
	return nil
}

// parseDate pins incoming YYYY-MM-DD values to midnight UTC so date
// equality in the store compares a single canonical instant.
func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func isForeignKeyViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1452
}

// Create stores a new booking in Pending Review. The package reference is
// checked inside the transaction; the MySQL FK constraint backs that up.
func (s *BookingService) Create(in CreateBookingInput) (uint, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	date, err := parseDate(in.PreferredDate)
	if err != nil {
		return 0, err
	}

	booking := models.Booking{
		PackageID:              in.PackageID,
		FullName:               strings.TrimSpace(in.FullName),
		PhoneNumber:            strings.TrimSpace(in.PhoneNumber),
		EmailAddress:           strings.TrimSpace(in.EmailAddress),
		PreferredDate:          date,
		Location:               strings.TrimSpace(in.Location),
		ExpectedGuests:         in.ExpectedGuests,
		AdditionalRequirements: in.AdditionalRequirements,
		Status:                 models.StatusPendingReview,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var pkg models.EventPackage
		if err := tx.Select("id").First(&pkg, in.PackageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPackageNotFound
			}
			return fmt.Errorf("failed to check event package: %w", err)
		}

		if err := tx.Create(&booking).Error; err != nil {
			if isForeignKeyViolation(err) {
				return ErrPackageNotFound
			}
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}
	return booking.ID, nil
}

// UpdateStatus transitions a booking and reconciles busy dates on the same
// transaction, so the derived table can never drift from the status write.
func (s *BookingService) UpdateStatus(id uint, newStatus models.BookingStatus) error {
	if !newStatus.IsValid() {
		return ErrInvalidStatus
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to load booking: %w", err)
		}

		oldStatus := booking.Status
		if err := tx.Model(&booking).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		return reconcileStatusChange(tx, booking.PreferredDate, oldStatus, newStatus)
	})
}

// Delete removes a booking; a confirmed booking's date is released when it
// was the last confirmed booking on that date.
func (s *BookingService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to load booking: %w", err)
		}

		if err := tx.Delete(&models.Booking{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}

		return reconcileDeletion(tx, booking.PreferredDate, booking.Status)
	})
}

// AdminBookingView is a booking row enriched with its package name, dates
// rendered in the wire formats.
type AdminBookingView struct {
	BookingID              uint                 `json:"booking_id"`
	PackageID              uint                 `json:"package_id"`
	PackageName            string               `json:"package_name"`
	FullName               string               `json:"full_name"`
	PhoneNumber            string               `json:"phone_number"`
	EmailAddress           string               `json:"email_address"`
	PreferredDate          string               `json:"preferred_date"`
	Location               string               `json:"location"`
	ExpectedGuests         *int                 `json:"expected_guests"`
	AdditionalRequirements *string              `json:"additional_requirements"`
	Status                 models.BookingStatus `json:"status"`
	BookingDate            string               `json:"booking_date"`
}

// Get loads a single booking with its package name.
func (s *BookingService) Get(id uint) (AdminBookingView, error) {
	var booking models.Booking
	if err := s.DB.Preload("Package").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdminBookingView{}, ErrBookingNotFound
		}
		return AdminBookingView{}, fmt.Errorf("failed to load booking: %w", err)
	}
	return adminView(booking), nil
}

// ListForAdmin returns bookings newest-first, optionally filtered by one
// status. "" and "All" mean no filter; any other non-member is rejected.
func (s *BookingService) ListForAdmin(statusFilter string) ([]AdminBookingView, error) {
	query := s.DB.Preload("Package").Order("booking_date DESC, id DESC")

	if statusFilter != "" && statusFilter != "All" {
		status := models.BookingStatus(statusFilter)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	views := make([]AdminBookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, adminView(b))
	}
	return views, nil
}

func adminView(b models.Booking) AdminBookingView {
	return AdminBookingView{
		BookingID:              b.ID,
		PackageID:              b.PackageID,
		PackageName:            b.Package.PackageName,
		FullName:               b.FullName,
		PhoneNumber:            b.PhoneNumber,
		EmailAddress:           b.EmailAddress,
		PreferredDate:          b.PreferredDate.Format(dateLayout),
		Location:               b.Location,
		ExpectedGuests:         b.ExpectedGuests,
		AdditionalRequirements: b.AdditionalRequirements,
		Status:                 b.Status,
		BookingDate:            b.BookingDate.Format(timestampLayout),
	}
}

type DashboardStats struct {
	TotalBookings int64 `json:"total_bookings"`
	PendingReview int64 `json:"pending_review"`
	Confirmed     int64 `json:"confirmed"`
	Rejected      int64 `json:"rejected"`
}

func (s *BookingService) Stats() (DashboardStats, error) {
	var stats DashboardStats
	if err := s.DB.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return DashboardStats{}, fmt.Errorf("failed to count bookings: %w", err)
	}

	counts := []struct {
		status models.BookingStatus
		target *int64
	}{
		{models.StatusPendingReview, &stats.PendingReview},
		{models.StatusConfirmed, &stats.Confirmed},
		{models.StatusRejected, &stats.Rejected},
	}
	for _, c := range counts {
		err := s.DB.Model(&models.Booking{}).Where("status = ?", c.status).Count(c.target).Error
		if err != nil {
			return DashboardStats{}, fmt.Errorf("failed to count %s bookings: %w", c.status, err)
		}
	}
	return stats, nil
}

// ClearAll wipes bookings and busy dates together; the confirm flag comes
// from an explicit confirm_clear field in the request body.
func (s *BookingService) ClearAll(confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("failed to clear bookings: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.BusyDate{}).Error; err != nil {
			return fmt.Errorf("failed to clear busy dates: %w", err)
		}
		return nil
	})
}
