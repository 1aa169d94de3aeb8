package handlers

import (
	"context"
	"errors"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"CARRENTAL_BACK-END/internal/config"
	"CARRENTAL_BACK-END/internal/dto"
	"CARRENTAL_BACK-END/internal/models"
	"CARRENTAL_BACK-END/internal/store"
	"CARRENTAL_BACK-END/internal/utils"
)

// BookingsHandler manages booking endpoints
type BookingsHandler struct {
	users    store.UserStore
	cars     store.CarStore
	bookings store.BookingStore
	cfg      *config.Config
}

// NewBookingsHandler creates a new BookingsHandler instance
func NewBookingsHandler(users store.UserStore, cars store.CarStore, bookings store.BookingStore, cfg *config.Config) *BookingsHandler {
	return &BookingsHandler{users: users, cars: cars, bookings: bookings, cfg: cfg}
}

func (h *BookingsHandler) queryCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.cfg.Database.QueryTimeout)
}

// parseRange validates a pickup/return date pair. The return date must be
// strictly after the pickup date.
func parseRange(w http.ResponseWriter, pickup, ret string) (time.Time, time.Time, bool) {
	pickupDate, err := utils.ParseDate(pickup)
	if err != nil {
		utils.WriteFailure(w, dto.ErrKindValidation, "pickupDate must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	returnDate, err := utils.ParseDate(ret)
	if err != nil {
		utils.WriteFailure(w, dto.ErrKindValidation, "returnDate must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	if !returnDate.After(pickupDate) {
		utils.WriteFailure(w, dto.ErrKindValidation, "returnDate must be after pickupDate")
		return time.Time{}, time.Time{}, false
	}
	return pickupDate, returnDate, true
}

// CheckAvailability returns cars at a location that are free over the range
// @Summary Check car availability
// @Description List available cars at a location with no overlapping booking in the date range
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.CheckAvailabilityRequest true "Location and date range"
// @Success 200 {object} dto.AvailabilityResponse "Available cars"
// @Router /api/bookings/check-availability [post]
func (h *BookingsHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.CheckAvailabilityRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Location == "" {
		utils.WriteFailure(w, dto.ErrKindValidation, "Location is required")
		return
	}
	pickupDate, returnDate, ok := parseRange(w, req.PickupDate, req.ReturnDate)
	if !ok {
		return
	}

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	cars, err := h.cars.ListAvailableCarsByLocation(ctx, req.Location)
	if err != nil {
		log.Printf("check availability: list cars: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to load cars")
		return
	}

	available := []models.Car{}
	for _, car := range cars {
		count, err := h.bookings.CountOverlappingBookings(ctx, car.ID, pickupDate, returnDate)
		if err != nil {
			log.Printf("check availability: overlap: %v", err)
			utils.WriteFailure(w, dto.ErrKindStorage, "Failed to check bookings")
			return
		}
		if count == 0 {
			available = append(available, car)
		}
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AvailabilityResponse{Success: true, AvailableCars: available})
}

// CreateBooking reserves a car for the acting user
// @Summary Create a booking
// @Description Book a car for a date range; price is days times pricePerDay
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookingRequest true "Car and date range"
// @Success 200 {object} dto.MessageResponse "Booking created"
// @Failure 200 {object} dto.ErrorResponse "Car unavailable or dates invalid"
// @Router /api/bookings/create [post]
func (h *BookingsHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteFailure(w, dto.ErrKindAuth, "User not authenticated")
		return
	}

	var req dto.CreateBookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	carID, err := uuid.Parse(req.Car)
	if err != nil {
		utils.WriteFailure(w, dto.ErrKindValidation, "Invalid car id")
		return
	}
	pickupDate, returnDate, ok := parseRange(w, req.PickupDate, req.ReturnDate)
	if !ok {
		return
	}

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	car, err := h.cars.GetCarByID(ctx, carID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteFailure(w, dto.ErrKindNotFound, "Car not found")
			return
		}
		log.Printf("create booking: get car: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to load car")
		return
	}
	if !car.IsAvailable || car.OwnerID == nil {
		utils.WriteFailure(w, dto.ErrKindValidation, "Car is not available")
		return
	}

	count, err := h.bookings.CountOverlappingBookings(ctx, car.ID, pickupDate, returnDate)
	if err != nil {
		log.Printf("create booking: overlap: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to check bookings")
		return
	}
	if count > 0 {
		utils.WriteFailure(w, dto.ErrKindValidation, "Car is not available")
		return
	}

	days := math.Ceil(returnDate.Sub(pickupDate).Hours() / 24)
	now := time.Now()
	booking := &models.Booking{
		ID:         uuid.New(),
		CarID:      car.ID,
		UserID:     userID,
		OwnerID:    *car.OwnerID,
		PickupDate: pickupDate,
		ReturnDate: returnDate,
		Status:     models.BookingPending,
		Price:      days * car.PricePerDay,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.bookings.CreateBooking(ctx, booking); err != nil {
		log.Printf("create booking: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to create booking")
		return
	}

	utils.WriteSuccessMessage(w, "Booking Created")
}

// GetUserBookings returns the acting user's bookings
// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BookingsResponse "Bookings"
// @Router /api/bookings/user [get]
func (h *BookingsHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteFailure(w, dto.ErrKindAuth, "User not authenticated")
		return
	}

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	bookings, err := h.bookings.ListBookingsByUser(ctx, userID)
	if err != nil {
		log.Printf("user bookings: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to load bookings")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.BookingsResponse{Success: true, Bookings: bookings})
}

// GetOwnerBookings returns bookings for the acting owner's cars
// @Summary List bookings for own cars
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BookingsResponse "Bookings"
// @Router /api/bookings/owner [get]
func (h *BookingsHandler) GetOwnerBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	owner, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	bookings, err := h.bookings.ListBookingsByOwner(ctx, owner.ID)
	if err != nil {
		log.Printf("owner bookings: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to load bookings")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.BookingsResponse{Success: true, Bookings: bookings})
}

// ChangeStatus moves a booking between pending, confirmed, and cancelled
// @Summary Change booking status
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangeBookingStatusRequest true "Booking id and new status"
// @Success 200 {object} dto.MessageResponse "Status updated"
// @Router /api/bookings/change-status [post]
func (h *BookingsHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	owner, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	var req dto.ChangeBookingStatusRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		utils.WriteFailure(w, dto.ErrKindValidation, "Invalid booking id")
		return
	}
	if !models.ValidBookingStatus(req.Status) {
		utils.WriteFailure(w, dto.ErrKindValidation, "Status must be pending, confirmed, or cancelled")
		return
	}

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	booking, err := h.bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteFailure(w, dto.ErrKindNotFound, "Booking not found")
			return
		}
		log.Printf("change status: get booking: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to load booking")
		return
	}
	if booking.OwnerID != owner.ID {
		utils.WriteFailure(w, dto.ErrKindNotFound, "Booking not found")
		return
	}

	if err := h.bookings.UpdateBookingStatus(ctx, booking.ID, req.Status); err != nil {
		log.Printf("change status: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to update status")
		return
	}

	utils.WriteSuccessMessage(w, "Status Updated")
}

// requireOwner mirrors OwnerHandler.requireOwner for booking endpoints
func (h *BookingsHandler) requireOwner(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteFailure(w, dto.ErrKindAuth, "User not authenticated")
		return nil, false
	}

	ctx, cancel := h.queryCtx(r)
	defer cancel()
	user, err := h.users.GetUserByID(ctx, userID)
	if err != nil {
		utils.WriteFailure(w, dto.ErrKindAuth, "User not authenticated")
		return nil, false
	}
	if !user.IsOwner() {
		utils.WriteFailure(w, dto.ErrKindAuth, "Not authorized")
		return nil, false
	}
	return user, true
}
