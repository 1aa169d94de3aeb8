package dto

import "CARRENTAL_BACK-END/internal/models"

// CheckAvailabilityRequest searches for rentable cars at a location over a
// date range. Dates are YYYY-MM-DD.
type CheckAvailabilityRequest struct {
	Location   string `json:"location" validate:"required"`
	PickupDate string `json:"pickupDate" validate:"required"`
	ReturnDate string `json:"returnDate" validate:"required"`
}

// CreateBookingRequest reserves a car for a date range
type CreateBookingRequest struct {
	Car        string `json:"car" validate:"required"`
	PickupDate string `json:"pickupDate" validate:"required"`
	ReturnDate string `json:"returnDate" validate:"required"`
}

// ChangeBookingStatusRequest moves a booking between statuses
type ChangeBookingStatusRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

// BookingsResponse wraps a list of bookings
type BookingsResponse struct {
	Success  bool             `json:"success"`
	Bookings []models.Booking `json:"bookings"`
}

// AvailabilityResponse lists cars free over the requested range
type AvailabilityResponse struct {
	Success       bool         `json:"success"`
	AvailableCars []models.Car `json:"availableCars"`
}
