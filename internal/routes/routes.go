package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"CARRENTAL_BACK-END/internal/config"
	"CARRENTAL_BACK-END/internal/handlers"
	"CARRENTAL_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	carsHandler *handlers.CarsHandler,
	ownerHandler *handlers.OwnerHandler,
	bookingsHandler *handlers.BookingsHandler,
	healthHandler *handlers.HealthHandler,
	jwtCfg *config.JWTConfig,
) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Identity routes
	http.HandleFunc("/api/user/register", authHandler.Register)
	http.HandleFunc("/api/user/login", authHandler.Login)
	http.HandleFunc("/api/user/data", middleware.AuthMiddleware(authHandler.GetUserData, jwtCfg))

	// Public listing routes
	http.HandleFunc("/api/cars", carsHandler.GetCars)

	// Owner routes
	http.HandleFunc("/api/owner/change-role", middleware.AuthMiddleware(ownerHandler.ChangeRole, jwtCfg))
	http.HandleFunc("/api/owner/add-car", middleware.AuthMiddleware(ownerHandler.AddCar, jwtCfg))
	http.HandleFunc("/api/owner/cars", middleware.AuthMiddleware(ownerHandler.GetOwnerCars, jwtCfg))
	http.HandleFunc("/api/owner/toggle-car", middleware.AuthMiddleware(ownerHandler.ToggleCar, jwtCfg))
	http.HandleFunc("/api/owner/delete-car", middleware.AuthMiddleware(ownerHandler.DeleteCar, jwtCfg))
	http.HandleFunc("/api/owner/dashboard", middleware.AuthMiddleware(ownerHandler.Dashboard, jwtCfg))
	http.HandleFunc("/api/owner/update-image", middleware.AuthMiddleware(ownerHandler.UpdateImage, jwtCfg))

	// Booking routes
	http.HandleFunc("/api/bookings/check-availability", bookingsHandler.CheckAvailability)
	http.HandleFunc("/api/bookings/create", middleware.AuthMiddleware(bookingsHandler.CreateBooking, jwtCfg))
	http.HandleFunc("/api/bookings/user", middleware.AuthMiddleware(bookingsHandler.GetUserBookings, jwtCfg))
	http.HandleFunc("/api/bookings/owner", middleware.AuthMiddleware(bookingsHandler.GetOwnerBookings, jwtCfg))
	http.HandleFunc("/api/bookings/change-status", middleware.AuthMiddleware(bookingsHandler.ChangeStatus, jwtCfg))

	// API documentation
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Car rental backend is running."))
}
