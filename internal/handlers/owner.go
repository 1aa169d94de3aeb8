package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"CARRENTAL_BACK-END/internal/config"
	"CARRENTAL_BACK-END/internal/dto"
	"CARRENTAL_BACK-END/internal/imagestore"
	"CARRENTAL_BACK-END/internal/models"
	"CARRENTAL_BACK-END/internal/store"
	"CARRENTAL_BACK-END/internal/utils"
)

const maxUploadSize = 10 << 20 // 10 MiB multipart memory cap

// OwnerHandler manages listing ownership endpoints
type OwnerHandler struct {
	users    store.UserStore
	cars     store.CarStore
	bookings store.BookingStore
	images   imagestore.Uploader
	cfg      *config.Config
}

// NewOwnerHandler creates a new OwnerHandler instance
func NewOwnerHandler(users store.UserStore, cars store.CarStore, bookings store.BookingStore, images imagestore.Uploader, cfg *config.Config) *OwnerHandler {
	return &OwnerHandler{users: users, cars: cars, bookings: bookings, images: images, cfg: cfg}
}

// requireOwner resolves the acting user and enforces the owner role. On
// failure the envelope is already written and ok is false.
func (h *OwnerHandler) requireOwner(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteFailure(w, dto.ErrKindAuth, "User not authenticated")
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.Database.QueryTimeout)
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

// ChangeRole promotes the acting user to owner
// @Summary Become an owner
// @Description Promote the authenticated user to the owner role
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse "Role changed"
// @Router /api/owner/change-role [post]
func (h *OwnerHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteFailure(w, dto.ErrKindAuth, "User not authenticated")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.Database.QueryTimeout)
	defer cancel()
	if err := h.users.UpdateUserRole(ctx, userID, models.RoleOwner); err != nil {
		log.Printf("change role: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to change role")
		return
	}

	utils.WriteSuccessMessage(w, "Now you can list cars")
}

// AddCar creates a listing from the multipart form (image file + carData
// JSON string)
// @Summary Add a car listing
// @Description Upload the car image and create a listing marked available
// @Tags owner
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Car image"
// @Param carData formData string true "Car fields as JSON"
// @Success 200 {object} dto.MessageResponse "Car added"
// @Failure 200 {object} dto.ErrorResponse "Validation or storage failure"
// @Router /api/owner/add-car [post]
func (h *OwnerHandler) AddCar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	owner, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.WriteFailure(w, dto.ErrKindValidation, "Invalid multipart form")
		return
	}

	var data dto.CarData
	if err := json.Unmarshal([]byte(r.FormValue("carData")), &data); err != nil {
		utils.WriteFailure(w, dto.ErrKindValidation, "Invalid carData")
		return
	}
	if msg, ok := validateCarData(&data); !ok {
		utils.WriteFailure(w, dto.ErrKindValidation, msg)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.WriteFailure(w, dto.ErrKindValidation, "Car image is required")
		return
	}
	defer file.Close()

	key := imagestore.ObjectKey("cars")
	uploadCtx, cancelUpload := context.WithTimeout(r.Context(), h.cfg.S3.UploadTimeout)
	defer cancelUpload()
	imageURL, err := h.images.Upload(uploadCtx, key, header.Header.Get("Content-Type"), file)
	if err != nil {
		log.Printf("add car: upload image: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to upload image")
		return
	}

	now := time.Now()
	car := &models.Car{
		ID:              uuid.New(),
		OwnerID:         &owner.ID,
		Brand:           data.Brand,
		Model:           data.Model,
		Year:            int(data.Year),
		PricePerDay:     float64(data.PricePerDay),
		Category:        models.Category(data.Category),
		Transmission:    models.Transmission(data.Transmission),
		FuelType:        models.FuelType(data.FuelType),
		SeatingCapacity: int(data.SeatingCapacity),
		Location:        data.Location,
		Description:     data.Description,
		Image:           imageURL,
		IsAvailable:     true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.Database.QueryTimeout)
	defer cancel()
	if err := h.cars.CreateCar(ctx, car); err != nil {
		// The image is already in the object store; remove it so a failed
		// listing does not leave an orphaned upload behind.
		deleteCtx, cancelDelete := context.WithTimeout(context.Background(), h.cfg.S3.UploadTimeout)
		defer cancelDelete()
		if delErr := h.images.Delete(deleteCtx, key); delErr != nil {
			log.Printf("add car: delete orphaned image %s: %v", key, delErr)
		}
		log.Printf("add car: create car: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to create listing")
		return
	}

	utils.WriteSuccessMessage(w, "Car Added")
}

// validateCarData checks required fields, enum membership, and numeric
// ranges. The message is user-facing.
func validateCarData(data *dto.CarData) (string, bool) {
	if data.Brand == "" || data.Model == "" || data.Location == "" {
		return "Brand, model, and location are required", false
	}
	if data.Year < 1900 || data.Year > 2100 {
		return "Year is out of range", false
	}
	if data.PricePerDay <= 0 {
		return "Daily price must be positive", false
	}
	if data.SeatingCapacity < 1 {
		return "Seating capacity must be at least 1", false
	}
	if !models.Category(data.Category).Valid() {
		return "Unknown category", false
	}
	if !models.Transmission(data.Transmission).Valid() {
		return "Unknown transmission", false
	}
	if !models.FuelType(data.FuelType).Valid() {
		return "Unknown fuel type", false
	}
	return "", true
}

// GetOwnerCars returns the acting owner's listings
// @Summary List own cars
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CarsResponse "Owner's listings"
// @Router /api/owner/cars [get]
func (h *OwnerHandler) GetOwnerCars(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	owner, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.Database.QueryTimeout)
	defer cancel()
	cars, err := h.cars.ListCarsByOwner(ctx, owner.ID)
	if err != nil {
		log.Printf("owner cars: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to load cars")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CarsResponse{Success: true, Cars: cars})
}

// ToggleCar flips a listing's availability
// @Summary Toggle car availability
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ToggleCarRequest true "Car id"
// @Success 200 {object} dto.MessageResponse "Availability toggled"
// @Router /api/owner/toggle-car [post]
func (h *OwnerHandler) ToggleCar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	owner, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	var req dto.ToggleCarRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	car, ok := h.ownedCar(w, r, owner, req.CarID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.Database.QueryTimeout)
	defer cancel()
	if err := h.cars.SetCarAvailability(ctx, car.ID, !car.IsAvailable); err != nil {
		log.Printf("toggle car: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to toggle availability")
		return
	}

	utils.WriteSuccessMessage(w, "Availability Toggled")
}

// DeleteCar removes a listing from the marketplace. The row is kept with
// the owner cleared so booking history stays intact.
// @Summary Remove a car listing
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeleteCarRequest true "Car id"
// @Success 200 {object} dto.MessageResponse "Car removed"
// @Router /api/owner/delete-car [post]
func (h *OwnerHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	owner, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	var req dto.DeleteCarRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	car, ok := h.ownedCar(w, r, owner, req.CarID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.Database.QueryTimeout)
	defer cancel()
	if err := h.cars.DetachCar(ctx, car.ID); err != nil {
		log.Printf("delete car: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to remove car")
		return
	}

	utils.WriteSuccessMessage(w, "Car Removed")
}

// ownedCar loads a car and verifies it belongs to the acting owner. A car
// owned by someone else reads as not found rather than leaking existence.
func (h *OwnerHandler) ownedCar(w http.ResponseWriter, r *http.Request, owner *models.User, rawID string) (*models.Car, bool) {
	carID, err := uuid.Parse(rawID)
	if err != nil {
		utils.WriteFailure(w, dto.ErrKindValidation, "Invalid car id")
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.Database.QueryTimeout)
	defer cancel()
	car, err := h.cars.GetCarByID(ctx, carID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteFailure(w, dto.ErrKindNotFound, "Car not found")
			return nil, false
		}
		log.Printf("load car: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to load car")
		return nil, false
	}
	if car.OwnerID == nil || *car.OwnerID != owner.ID {
		utils.WriteFailure(w, dto.ErrKindNotFound, "Car not found")
		return nil, false
	}
	return car, true
}

// Dashboard returns the acting owner's aggregates
// @Summary Owner dashboard
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse "Dashboard data"
// @Router /api/owner/dashboard [get]
func (h *OwnerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	owner, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.Database.QueryTimeout)
	defer cancel()
	data, err := h.bookings.OwnerDashboard(ctx, owner.ID)
	if err != nil {
		log.Printf("dashboard: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to load dashboard")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.DashboardResponse{Success: true, DashboardData: *data})
}

// UpdateImage stores a new profile image for the acting owner
// @Summary Update profile image
// @Tags owner
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Profile image"
// @Success 200 {object} dto.ImageResponse "Image updated"
// @Router /api/owner/update-image [post]
func (h *OwnerHandler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	owner, ok := h.requireOwner(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.WriteFailure(w, dto.ErrKindValidation, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.WriteFailure(w, dto.ErrKindValidation, "Image is required")
		return
	}
	defer file.Close()

	key := imagestore.ObjectKey("users")
	uploadCtx, cancelUpload := context.WithTimeout(r.Context(), h.cfg.S3.UploadTimeout)
	defer cancelUpload()
	imageURL, err := h.images.Upload(uploadCtx, key, header.Header.Get("Content-Type"), file)
	if err != nil {
		log.Printf("update image: upload: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to upload image")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.Database.QueryTimeout)
	defer cancel()
	if err := h.users.UpdateUserImage(ctx, owner.ID, imageURL); err != nil {
		deleteCtx, cancelDelete := context.WithTimeout(context.Background(), h.cfg.S3.UploadTimeout)
		defer cancelDelete()
		if delErr := h.images.Delete(deleteCtx, key); delErr != nil {
			log.Printf("update image: delete orphaned image %s: %v", key, delErr)
		}
		log.Printf("update image: save: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to update image")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ImageResponse{Success: true, Message: "Image Updated", Image: imageURL})
}
