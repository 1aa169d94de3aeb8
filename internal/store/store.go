// Package store provides persistence for users, cars, and bookings on top
// of PostgreSQL.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"CARRENTAL_BACK-END/internal/models"
)

// Sentinel errors returned by store implementations
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore persists user accounts
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateUserRole(ctx context.Context, id uuid.UUID, role string) error
	UpdateUserImage(ctx context.Context, id uuid.UUID, image string) error
}

// CarStore persists car listings
type CarStore interface {
	CreateCar(ctx context.Context, car *models.Car) error
	GetCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error)
	// ListAvailableCars returns listings with isAvailable=true ordered by
	// created_at descending, id as tiebreaker, so reads are deterministic.
	ListAvailableCars(ctx context.Context) ([]models.Car, error)
	ListAvailableCarsByLocation(ctx context.Context, location string) ([]models.Car, error)
	ListCarsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Car, error)
	SetCarAvailability(ctx context.Context, id uuid.UUID, available bool) error
	// DetachCar clears the owner reference and marks the listing
	// unavailable, removing it from every list without destroying booking
	// history.
	DetachCar(ctx context.Context, id uuid.UUID) error
}

// BookingStore persists bookings
type BookingStore interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	ListBookingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) error
	// CountOverlappingBookings counts non-cancelled bookings for the car
	// whose date range intersects [pickup, ret].
	CountOverlappingBookings(ctx context.Context, carID uuid.UUID, pickup, ret time.Time) (int, error)
	OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*models.DashboardData, error)
}
