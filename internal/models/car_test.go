package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidation(t *testing.T) {
	assert.True(t, CategorySUV.Valid())
	assert.False(t, Category("Spaceship").Valid())

	assert.True(t, TransmissionSemiAutomatic.Valid())
	assert.False(t, Transmission("CVT-ish").Valid())

	assert.True(t, FuelHybrid.Valid())
	assert.False(t, FuelType("Coal").Valid())

	assert.True(t, ValidBookingStatus(BookingCancelled))
	assert.False(t, ValidBookingStatus("teleported"))
}
