package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is the listing category shown to renters
type Category string

const (
	CategorySedan Category = "Sedan"
	CategorySUV   Category = "SUV"
	CategoryVan   Category = "Van"
)

// Valid reports whether the category is one of the accepted values
func (c Category) Valid() bool {
	switch c {
	case CategorySedan, CategorySUV, CategoryVan:
		return true
	}
	return false
}

// Transmission is the gearbox type of a listed car
type Transmission string

const (
	TransmissionAutomatic     Transmission = "Automatic"
	TransmissionManual        Transmission = "Manual"
	TransmissionSemiAutomatic Transmission = "Semi-Automatic"
)

// Valid reports whether the transmission is one of the accepted values
func (t Transmission) Valid() bool {
	switch t {
	case TransmissionAutomatic, TransmissionManual, TransmissionSemiAutomatic:
		return true
	}
	return false
}

// FuelType is the fuel type of a listed car
type FuelType string

const (
	FuelGas      FuelType = "Gas"
	FuelDiesel   FuelType = "Diesel"
	FuelPetrol   FuelType = "Petrol"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

// Valid reports whether the fuel type is one of the accepted values
func (f FuelType) Valid() bool {
	switch f {
	case FuelGas, FuelDiesel, FuelPetrol, FuelElectric, FuelHybrid:
		return true
	}
	return false
}

// Car represents a rental listing. JSON field names match the documents the
// existing frontend consumes (pricePerDay, fuel_type, seating_capacity,
// isAvailable).
type Car struct {
	ID              uuid.UUID    `json:"id" db:"id"`
	OwnerID         *uuid.UUID   `json:"owner" db:"owner_id"` // nil once a listing is detached
	Brand           string       `json:"brand" db:"brand"`
	Model           string       `json:"model" db:"model"`
	Year            int          `json:"year" db:"year"`
	PricePerDay     float64      `json:"pricePerDay" db:"price_per_day"`
	Category        Category     `json:"category" db:"category"`
	Transmission    Transmission `json:"transmission" db:"transmission"`
	FuelType        FuelType     `json:"fuel_type" db:"fuel_type"`
	SeatingCapacity int          `json:"seating_capacity" db:"seating_capacity"`
	Location        string       `json:"location" db:"location"`
	Description     string       `json:"description" db:"description"`
	Image           string       `json:"image" db:"image"`
	IsAvailable     bool         `json:"isAvailable" db:"is_available"`
	CreatedAt       time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time    `json:"updatedAt" db:"updated_at"`
}
