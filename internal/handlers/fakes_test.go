package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"CARRENTAL_BACK-END/internal/config"
	"CARRENTAL_BACK-END/internal/middleware"
	"CARRENTAL_BACK-END/internal/models"
	"CARRENTAL_BACK-END/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{QueryTimeout: time.Second},
		JWT:      config.JWTConfig{Secret: "test-secret"},
		S3:       config.S3Config{UploadTimeout: time.Second},
	}
}

// --- fake stores ---

type fakeUserStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*models.User
	createErr error
	updateErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uuid.UUID]*models.User{}}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) UpdateUserRole(ctx context.Context, id uuid.UUID, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserStore) UpdateUserImage(ctx context.Context, id uuid.UUID, image string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Image = image
	return nil
}

func (f *fakeUserStore) addUser(name, email, role string) *models.User {
	u := &models.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.mu.Lock()
	f.users[u.ID] = u
	f.mu.Unlock()
	return u
}

type fakeCarStore struct {
	mu        sync.Mutex
	cars      []*models.Car
	createErr error
}

func newFakeCarStore() *fakeCarStore {
	return &fakeCarStore{}
}

func (f *fakeCarStore) CreateCar(ctx context.Context, car *models.Car) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	copied := *car
	f.cars = append(f.cars, &copied)
	return nil
}

func (f *fakeCarStore) GetCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.cars {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeCarStore) list(filter func(*models.Car) bool) []models.Car {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Car{}
	for _, c := range f.cars {
		if filter(c) {
			out = append(out, *c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (f *fakeCarStore) ListAvailableCars(ctx context.Context) ([]models.Car, error) {
	return f.list(func(c *models.Car) bool { return c.IsAvailable }), nil
}

func (f *fakeCarStore) ListAvailableCarsByLocation(ctx context.Context, location string) ([]models.Car, error) {
	return f.list(func(c *models.Car) bool { return c.IsAvailable && c.Location == location }), nil
}

func (f *fakeCarStore) ListCarsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Car, error) {
	return f.list(func(c *models.Car) bool { return c.OwnerID != nil && *c.OwnerID == ownerID }), nil
}

func (f *fakeCarStore) SetCarAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.cars {
		if c.ID == id {
			c.IsAvailable = available
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeCarStore) DetachCar(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.cars {
		if c.ID == id {
			c.OwnerID = nil
			c.IsAvailable = false
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeCarStore) addCar(ownerID uuid.UUID, location string, price float64, available bool) *models.Car {
	c := &models.Car{
		ID:              uuid.New(),
		OwnerID:         &ownerID,
		Brand:           "BMW",
		Model:           "X5",
		Year:            2022,
		PricePerDay:     price,
		Category:        models.CategorySUV,
		Transmission:    models.TransmissionAutomatic,
		FuelType:        models.FuelPetrol,
		SeatingCapacity: 5,
		Location:        location,
		Image:           "https://img.example/x5.jpg",
		IsAvailable:     available,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	f.mu.Lock()
	f.cars = append(f.cars, c)
	f.mu.Unlock()
	return c
}

type fakeBookingStore struct {
	mu        sync.Mutex
	bookings  []*models.Booking
	createErr error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{}
}

func (f *fakeBookingStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	copied := *booking
	f.bookings = append(f.bookings, &copied)
	return nil
}

func (f *fakeBookingStore) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeBookingStore) listBookings(filter func(*models.Booking) bool) []models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Booking{}
	for _, b := range f.bookings {
		if filter(b) {
			out = append(out, *b)
		}
	}
	return out
}

func (f *fakeBookingStore) ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	return f.listBookings(func(b *models.Booking) bool { return b.UserID == userID }), nil
}

func (f *fakeBookingStore) ListBookingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Booking, error) {
	return f.listBookings(func(b *models.Booking) bool { return b.OwnerID == ownerID }), nil
}

func (f *fakeBookingStore) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeBookingStore) CountOverlappingBookings(ctx context.Context, carID uuid.UUID, pickup, ret time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, b := range f.bookings {
		if b.CarID != carID || b.Status == models.BookingCancelled {
			continue
		}
		if !b.PickupDate.After(ret) && !b.ReturnDate.Before(pickup) {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingStore) OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*models.DashboardData, error) {
	data := &models.DashboardData{RecentBookings: []models.Booking{}}
	for _, b := range f.listBookings(func(b *models.Booking) bool { return b.OwnerID == ownerID }) {
		data.TotalBookings++
		switch b.Status {
		case models.BookingPending:
			data.PendingBookings++
		case models.BookingConfirmed:
			data.CompletedBookings++
			data.MonthlyRevenue += b.Price
		}
		if len(data.RecentBookings) < 3 {
			data.RecentBookings = append(data.RecentBookings, b)
		}
	}
	return data, nil
}

// --- fake uploader ---

type fakeUploader struct {
	mu        sync.Mutex
	uploads   map[string][]byte
	deleted   []string
	uploadErr error
	baseURL   string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploads: map[string][]byte{}, baseURL: "https://img.example"}
}

func (f *fakeUploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.uploads[key] = data
	return f.baseURL + "/" + key, nil
}

func (f *fakeUploader) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.uploads, key)
	f.deleted = append(f.deleted, key)
	return nil
}

// --- request helpers ---

func doJSON(t *testing.T, handler http.HandlerFunc, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func authed(handler http.HandlerFunc, cfg *config.Config) http.HandlerFunc {
	return middleware.AuthMiddleware(handler, &cfg.JWT)
}

func tokenFor(t *testing.T, userID uuid.UUID, cfg *config.Config) string {
	t.Helper()
	token, err := middleware.GenerateToken(userID, &cfg.JWT)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// multipartCarRequest builds the add-car form the frontend submits: an
// image part plus carData as a JSON-encoded string field.
func multipartCarRequest(t *testing.T, target, token string, carData any, image []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	data, err := json.Marshal(carData)
	if err != nil {
		t.Fatalf("marshal carData: %v", err)
	}
	if err := w.WriteField("carData", string(data)); err != nil {
		t.Fatalf("write carData field: %v", err)
	}
	if image != nil {
		part, err := w.CreateFormFile("image", "car.jpg")
		if err != nil {
			t.Fatalf("create image part: %v", err)
		}
		if _, err := part.Write(image); err != nil {
			t.Fatalf("write image part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}
