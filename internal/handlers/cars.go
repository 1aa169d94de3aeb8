package handlers

import (
	"context"
	"log"
	"net/http"

	"CARRENTAL_BACK-END/internal/config"
	"CARRENTAL_BACK-END/internal/dto"
	"CARRENTAL_BACK-END/internal/store"
	"CARRENTAL_BACK-END/internal/utils"
)

// CarsHandler serves the public car listing endpoints
type CarsHandler struct {
	cars store.CarStore
	cfg  *config.Config
}

// NewCarsHandler creates a new CarsHandler instance
func NewCarsHandler(cars store.CarStore, cfg *config.Config) *CarsHandler {
	return &CarsHandler{cars: cars, cfg: cfg}
}

// GetCars returns every listing currently marked available
// @Summary List available cars
// @Description Get all cars with isAvailable=true, newest first
// @Tags cars
// @Produce json
// @Success 200 {object} dto.CarsResponse "Available cars"
// @Router /api/cars [get]
func (h *CarsHandler) GetCars(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.Database.QueryTimeout)
	defer cancel()
	cars, err := h.cars.ListAvailableCars(ctx)
	if err != nil {
		log.Printf("get cars: %v", err)
		utils.WriteFailure(w, dto.ErrKindStorage, "Failed to load cars")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CarsResponse{Success: true, Cars: cars})
}
