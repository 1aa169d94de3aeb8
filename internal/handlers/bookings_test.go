package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CARRENTAL_BACK-END/internal/dto"
	"CARRENTAL_BACK-END/internal/models"
)

type bookingFixture struct {
	users    *fakeUserStore
	cars     *fakeCarStore
	bookings *fakeBookingStore
	handler  *BookingsHandler
	owner    *models.User
	renter   *models.User
	car      *models.Car
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	cfg := testConfig()
	f := &bookingFixture{
		users:    newFakeUserStore(),
		cars:     newFakeCarStore(),
		bookings: newFakeBookingStore(),
	}
	f.handler = NewBookingsHandler(f.users, f.cars, f.bookings, cfg)
	f.owner = f.users.addUser("Alice", "alice@example.com", models.RoleOwner)
	f.renter = f.users.addUser("Bob", "bob@example.com", models.RoleUser)
	f.car = f.cars.addCar(f.owner.ID, "Cyberjaya", 100, true)
	return f
}

func TestCreateBooking(t *testing.T) {
	cfg := testConfig()

	t.Run("books a free car and prices by day count", func(t *testing.T) {
		f := newBookingFixture(t)

		rr := doJSON(t, authed(f.handler.CreateBooking, cfg), http.MethodPost, "/api/bookings/create",
			tokenFor(t, f.renter.ID, cfg),
			dto.CreateBookingRequest{Car: f.car.ID.String(), PickupDate: "2026-09-10", ReturnDate: "2026-09-13"})

		body := decodeBody(t, rr)
		require.Equal(t, true, body["success"], "message: %v", body["message"])
		assert.Equal(t, "Booking Created", body["message"])

		bookings, err := f.bookings.ListBookingsByUser(context.Background(), f.renter.ID)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		b := bookings[0]
		assert.Equal(t, f.car.ID, b.CarID)
		assert.Equal(t, f.owner.ID, b.OwnerID)
		assert.Equal(t, models.BookingPending, b.Status)
		assert.Equal(t, 300.0, b.Price, "3 days at 100 per day")
	})

	t.Run("rejects an overlapping range", func(t *testing.T) {
		f := newBookingFixture(t)
		token := tokenFor(t, f.renter.ID, cfg)

		first := doJSON(t, authed(f.handler.CreateBooking, cfg), http.MethodPost, "/api/bookings/create",
			token, dto.CreateBookingRequest{Car: f.car.ID.String(), PickupDate: "2026-09-10", ReturnDate: "2026-09-13"})
		require.Equal(t, true, decodeBody(t, first)["success"])

		second := doJSON(t, authed(f.handler.CreateBooking, cfg), http.MethodPost, "/api/bookings/create",
			token, dto.CreateBookingRequest{Car: f.car.ID.String(), PickupDate: "2026-09-12", ReturnDate: "2026-09-15"})
		body := decodeBody(t, second)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Car is not available", body["message"])
	})

	t.Run("rejects an unavailable car", func(t *testing.T) {
		f := newBookingFixture(t)
		require.NoError(t, f.cars.SetCarAvailability(context.Background(), f.car.ID, false))

		rr := doJSON(t, authed(f.handler.CreateBooking, cfg), http.MethodPost, "/api/bookings/create",
			tokenFor(t, f.renter.ID, cfg),
			dto.CreateBookingRequest{Car: f.car.ID.String(), PickupDate: "2026-09-10", ReturnDate: "2026-09-13"})

		body := decodeBody(t, rr)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Car is not available", body["message"])
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		f := newBookingFixture(t)

		rr := doJSON(t, authed(f.handler.CreateBooking, cfg), http.MethodPost, "/api/bookings/create",
			tokenFor(t, f.renter.ID, cfg),
			dto.CreateBookingRequest{Car: f.car.ID.String(), PickupDate: "2026-09-13", ReturnDate: "2026-09-10"})

		body := decodeBody(t, rr)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, dto.ErrKindValidation, body["error"])
	})
}

func TestCheckAvailability(t *testing.T) {
	cfg := testConfig()

	t.Run("filters by location and booked ranges", func(t *testing.T) {
		f := newBookingFixture(t)
		elsewhere := f.cars.addCar(f.owner.ID, "Penang", 60, true)
		booked := f.cars.addCar(f.owner.ID, "Cyberjaya", 90, true)

		token := tokenFor(t, f.renter.ID, cfg)
		rr := doJSON(t, authed(f.handler.CreateBooking, cfg), http.MethodPost, "/api/bookings/create",
			token, dto.CreateBookingRequest{Car: booked.ID.String(), PickupDate: "2026-09-10", ReturnDate: "2026-09-13"})
		require.Equal(t, true, decodeBody(t, rr)["success"])

		rr = doJSON(t, f.handler.CheckAvailability, http.MethodPost, "/api/bookings/check-availability", "",
			dto.CheckAvailabilityRequest{Location: "Cyberjaya", PickupDate: "2026-09-11", ReturnDate: "2026-09-12"})

		body := decodeBody(t, rr)
		require.Equal(t, true, body["success"])
		list := body["availableCars"].([]any)
		require.Len(t, list, 1)
		got := list[0].(map[string]any)
		assert.Equal(t, f.car.ID.String(), got["id"])
		assert.NotEqual(t, elsewhere.ID.String(), got["id"])
	})

	t.Run("a cancelled booking frees the range", func(t *testing.T) {
		f := newBookingFixture(t)
		token := tokenFor(t, f.renter.ID, cfg)

		rr := doJSON(t, authed(f.handler.CreateBooking, cfg), http.MethodPost, "/api/bookings/create",
			token, dto.CreateBookingRequest{Car: f.car.ID.String(), PickupDate: "2026-09-10", ReturnDate: "2026-09-13"})
		require.Equal(t, true, decodeBody(t, rr)["success"])

		bookings, err := f.bookings.ListBookingsByUser(context.Background(), f.renter.ID)
		require.NoError(t, err)
		require.NoError(t, f.bookings.UpdateBookingStatus(context.Background(), bookings[0].ID, models.BookingCancelled))

		rr = doJSON(t, f.handler.CheckAvailability, http.MethodPost, "/api/bookings/check-availability", "",
			dto.CheckAvailabilityRequest{Location: "Cyberjaya", PickupDate: "2026-09-10", ReturnDate: "2026-09-13"})

		body := decodeBody(t, rr)
		require.Equal(t, true, body["success"])
		assert.Len(t, body["availableCars"].([]any), 1)
	})
}

func TestChangeBookingStatus(t *testing.T) {
	cfg := testConfig()

	book := func(t *testing.T, f *bookingFixture) models.Booking {
		t.Helper()
		rr := doJSON(t, authed(f.handler.CreateBooking, cfg), http.MethodPost, "/api/bookings/create",
			tokenFor(t, f.renter.ID, cfg),
			dto.CreateBookingRequest{Car: f.car.ID.String(), PickupDate: "2026-09-10", ReturnDate: "2026-09-13"})
		require.Equal(t, true, decodeBody(t, rr)["success"])
		bookings, err := f.bookings.ListBookingsByUser(context.Background(), f.renter.ID)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		return bookings[0]
	}

	t.Run("the car's owner can confirm", func(t *testing.T) {
		f := newBookingFixture(t)
		booking := book(t, f)

		rr := doJSON(t, authed(f.handler.ChangeStatus, cfg), http.MethodPost, "/api/bookings/change-status",
			tokenFor(t, f.owner.ID, cfg),
			dto.ChangeBookingStatusRequest{BookingID: booking.ID.String(), Status: models.BookingConfirmed})

		body := decodeBody(t, rr)
		require.Equal(t, true, body["success"])
		assert.Equal(t, "Status Updated", body["message"])

		updated, err := f.bookings.GetBookingByID(context.Background(), booking.ID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingConfirmed, updated.Status)
	})

	t.Run("a different owner cannot touch the booking", func(t *testing.T) {
		f := newBookingFixture(t)
		booking := book(t, f)
		stranger := f.users.addUser("Mallory", "mallory@example.com", models.RoleOwner)

		rr := doJSON(t, authed(f.handler.ChangeStatus, cfg), http.MethodPost, "/api/bookings/change-status",
			tokenFor(t, stranger.ID, cfg),
			dto.ChangeBookingStatusRequest{BookingID: booking.ID.String(), Status: models.BookingConfirmed})

		body := decodeBody(t, rr)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, dto.ErrKindNotFound, body["error"])
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		f := newBookingFixture(t)
		booking := book(t, f)

		rr := doJSON(t, authed(f.handler.ChangeStatus, cfg), http.MethodPost, "/api/bookings/change-status",
			tokenFor(t, f.owner.ID, cfg),
			dto.ChangeBookingStatusRequest{BookingID: booking.ID.String(), Status: "teleported"})

		body := decodeBody(t, rr)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, dto.ErrKindValidation, body["error"])
	})
}

func TestListBookings(t *testing.T) {
	cfg := testConfig()
	f := newBookingFixture(t)

	rr := doJSON(t, authed(f.handler.CreateBooking, cfg), http.MethodPost, "/api/bookings/create",
		tokenFor(t, f.renter.ID, cfg),
		dto.CreateBookingRequest{Car: f.car.ID.String(), PickupDate: "2026-09-10", ReturnDate: "2026-09-13"})
	require.Equal(t, true, decodeBody(t, rr)["success"])

	rr = doJSON(t, authed(f.handler.GetUserBookings, cfg), http.MethodGet, "/api/bookings/user",
		tokenFor(t, f.renter.ID, cfg), nil)
	body := decodeBody(t, rr)
	require.Equal(t, true, body["success"])
	assert.Len(t, body["bookings"].([]any), 1)

	rr = doJSON(t, authed(f.handler.GetOwnerBookings, cfg), http.MethodGet, "/api/bookings/owner",
		tokenFor(t, f.owner.ID, cfg), nil)
	body = decodeBody(t, rr)
	require.Equal(t, true, body["success"])
	assert.Len(t, body["bookings"].([]any), 1)

	// A renter without the owner role cannot read the owner feed
	rr = doJSON(t, authed(f.handler.GetOwnerBookings, cfg), http.MethodGet, "/api/bookings/owner",
		tokenFor(t, f.renter.ID, cfg), nil)
	body = decodeBody(t, rr)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, dto.ErrKindAuth, body["error"])
}
