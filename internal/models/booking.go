package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is a known booking status
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// Booking represents a reservation of a car for a date range. Car is
// populated on list reads so the frontend can render the booked listing
// without extra requests.
type Booking struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CarID      uuid.UUID `json:"carId" db:"car_id"`
	UserID     uuid.UUID `json:"user" db:"user_id"`
	OwnerID    uuid.UUID `json:"owner" db:"owner_id"`
	PickupDate time.Time `json:"pickupDate" db:"pickup_date"`
	ReturnDate time.Time `json:"returnDate" db:"return_date"`
	Status     string    `json:"status" db:"status"`
	Price      float64   `json:"price" db:"price"`
	Car        *Car      `json:"car,omitempty" db:"-"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// DashboardData aggregates an owner's listings and bookings for the
// dashboard view
type DashboardData struct {
	TotalCars         int       `json:"totalCars"`
	TotalBookings     int       `json:"totalBookings"`
	PendingBookings   int       `json:"pendingBookings"`
	CompletedBookings int       `json:"completedBookings"`
	RecentBookings    []Booking `json:"recentBookings"`
	MonthlyRevenue    float64   `json:"monthlyRevenue"`
}
