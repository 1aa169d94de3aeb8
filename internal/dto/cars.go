package dto

import (
	"strconv"
	"strings"

	"CARRENTAL_BACK-END/internal/models"
)

// Numeric decodes a JSON number that the existing frontend sometimes
// serializes as a string (number inputs yield strings once edited)
type Numeric float64

func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = Numeric(v)
	return nil
}

// CarData is the carData part of the add-car multipart form
type CarData struct {
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	Year            Numeric `json:"year"`
	PricePerDay     Numeric `json:"pricePerDay"`
	Category        string  `json:"category"`
	Transmission    string  `json:"transmission"`
	FuelType        string  `json:"fuel_type"`
	SeatingCapacity Numeric `json:"seating_capacity"`
	Location        string  `json:"location"`
	Description     string  `json:"description"`
}

// CarsResponse wraps a list of car records
type CarsResponse struct {
	Success bool         `json:"success"`
	Cars    []models.Car `json:"cars"`
}

// ToggleCarRequest identifies the listing whose availability is flipped
type ToggleCarRequest struct {
	CarID string `json:"carId" validate:"required"`
}

// DeleteCarRequest identifies the listing being removed
type DeleteCarRequest struct {
	CarID string `json:"carId" validate:"required"`
}

// DashboardResponse wraps owner dashboard aggregates
type DashboardResponse struct {
	Success       bool                 `json:"success"`
	DashboardData models.DashboardData `json:"dashboardData"`
}

// ImageResponse reports the stored profile image URL
type ImageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Image   string `json:"image"`
}
