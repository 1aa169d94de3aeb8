package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"CARRENTAL_BACK-END/internal/models"
)

const uniqueViolation = "23505"

// Postgres implements UserStore, CarStore, and BookingStore on a pgx pool
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres store bound to the given pool
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// --- users ---

func (p *Postgres) CreateUser(ctx context.Context, user *models.User) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, image, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.Image,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return p.getUser(ctx, "email = $1", email)
}

func (p *Postgres) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return p.getUser(ctx, "id = $1", id)
}

func (p *Postgres) getUser(ctx context.Context, where string, arg any) (*models.User, error) {
	var user models.User
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, image, created_at, updated_at
		 FROM users WHERE `+where,
		arg).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.Image, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (p *Postgres) UpdateUserRole(ctx context.Context, id uuid.UUID, role string) error {
	return p.execOne(ctx,
		`UPDATE users SET role = $2, updated_at = now() WHERE id = $1`, id, role)
}

func (p *Postgres) UpdateUserImage(ctx context.Context, id uuid.UUID, image string) error {
	return p.execOne(ctx,
		`UPDATE users SET image = $2, updated_at = now() WHERE id = $1`, id, image)
}

// --- cars ---

const carColumns = `id, owner_id, brand, model, year, price_per_day, category,
	transmission, fuel_type, seating_capacity, location, description, image,
	is_available, created_at, updated_at`

func (p *Postgres) CreateCar(ctx context.Context, car *models.Car) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO cars (id, owner_id, brand, model, year, price_per_day, category,
		 transmission, fuel_type, seating_capacity, location, description, image,
		 is_available, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		car.ID, car.OwnerID, car.Brand, car.Model, car.Year, car.PricePerDay,
		car.Category, car.Transmission, car.FuelType, car.SeatingCapacity,
		car.Location, car.Description, car.Image, car.IsAvailable,
		car.CreatedAt, car.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create car: %w", err)
	}
	return nil
}

func (p *Postgres) GetCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT `+carColumns+` FROM cars WHERE id = $1`, id)
	car, err := scanCar(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get car: %w", err)
	}
	return car, nil
}

func (p *Postgres) ListAvailableCars(ctx context.Context) ([]models.Car, error) {
	return p.listCars(ctx,
		`SELECT `+carColumns+` FROM cars WHERE is_available = TRUE
		 ORDER BY created_at DESC, id`)
}

func (p *Postgres) ListAvailableCarsByLocation(ctx context.Context, location string) ([]models.Car, error) {
	return p.listCars(ctx,
		`SELECT `+carColumns+` FROM cars WHERE is_available = TRUE AND location = $1
		 ORDER BY created_at DESC, id`, location)
}

func (p *Postgres) ListCarsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Car, error) {
	return p.listCars(ctx,
		`SELECT `+carColumns+` FROM cars WHERE owner_id = $1
		 ORDER BY created_at DESC, id`, ownerID)
}

func (p *Postgres) listCars(ctx context.Context, query string, args ...any) ([]models.Car, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	cars := []models.Car{}
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, *car)
	}
	return cars, rows.Err()
}

func scanCar(row pgx.Row) (*models.Car, error) {
	var car models.Car
	err := row.Scan(&car.ID, &car.OwnerID, &car.Brand, &car.Model, &car.Year,
		&car.PricePerDay, &car.Category, &car.Transmission, &car.FuelType,
		&car.SeatingCapacity, &car.Location, &car.Description, &car.Image,
		&car.IsAvailable, &car.CreatedAt, &car.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (p *Postgres) SetCarAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	return p.execOne(ctx,
		`UPDATE cars SET is_available = $2, updated_at = now() WHERE id = $1`, id, available)
}

func (p *Postgres) DetachCar(ctx context.Context, id uuid.UUID) error {
	return p.execOne(ctx,
		`UPDATE cars SET owner_id = NULL, is_available = FALSE, updated_at = now() WHERE id = $1`, id)
}

// --- bookings ---

func (p *Postgres) CreateBooking(ctx context.Context, booking *models.Booking) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO bookings (id, car_id, user_id, owner_id, pickup_date, return_date,
		 status, price, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		booking.ID, booking.CarID, booking.UserID, booking.OwnerID,
		booking.PickupDate, booking.ReturnDate, booking.Status, booking.Price,
		booking.CreatedAt, booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (p *Postgres) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var b models.Booking
	err := p.pool.QueryRow(ctx,
		`SELECT id, car_id, user_id, owner_id, pickup_date, return_date, status, price,
		 created_at, updated_at FROM bookings WHERE id = $1`,
		id).Scan(&b.ID, &b.CarID, &b.UserID, &b.OwnerID, &b.PickupDate,
		&b.ReturnDate, &b.Status, &b.Price, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

func (p *Postgres) ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	return p.listBookings(ctx, "b.user_id = $1", userID)
}

func (p *Postgres) ListBookingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Booking, error) {
	return p.listBookings(ctx, "b.owner_id = $1", ownerID)
}

// listBookings joins the booked car so list responses carry the listing the
// frontend renders alongside each booking.
func (p *Postgres) listBookings(ctx context.Context, where string, arg any) ([]models.Booking, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT b.id, b.car_id, b.user_id, b.owner_id, b.pickup_date, b.return_date,
		 b.status, b.price, b.created_at, b.updated_at,
		 c.id, c.owner_id, c.brand, c.model, c.year, c.price_per_day, c.category,
		 c.transmission, c.fuel_type, c.seating_capacity, c.location, c.description,
		 c.image, c.is_available, c.created_at, c.updated_at
		 FROM bookings b JOIN cars c ON c.id = b.car_id
		 WHERE `+where+`
		 ORDER BY b.created_at DESC, b.id`, arg)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		var c models.Car
		err := rows.Scan(&b.ID, &b.CarID, &b.UserID, &b.OwnerID, &b.PickupDate,
			&b.ReturnDate, &b.Status, &b.Price, &b.CreatedAt, &b.UpdatedAt,
			&c.ID, &c.OwnerID, &c.Brand, &c.Model, &c.Year, &c.PricePerDay,
			&c.Category, &c.Transmission, &c.FuelType, &c.SeatingCapacity,
			&c.Location, &c.Description, &c.Image, &c.IsAvailable,
			&c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		b.Car = &c
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (p *Postgres) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) error {
	return p.execOne(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`, id, status)
}

func (p *Postgres) CountOverlappingBookings(ctx context.Context, carID uuid.UUID, pickup, ret time.Time) (int, error) {
	var count int
	err := p.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings
		 WHERE car_id = $1 AND status <> 'cancelled'
		 AND pickup_date <= $3 AND return_date >= $2`,
		carID, pickup, ret).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count overlapping bookings: %w", err)
	}
	return count, nil
}

func (p *Postgres) OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*models.DashboardData, error) {
	data := &models.DashboardData{}

	err := p.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM cars WHERE owner_id = $1`, ownerID).Scan(&data.TotalCars)
	if err != nil {
		return nil, fmt.Errorf("dashboard cars: %w", err)
	}

	err = p.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		 COUNT(*) FILTER (WHERE status = 'pending'),
		 COUNT(*) FILTER (WHERE status = 'confirmed')
		 FROM bookings WHERE owner_id = $1`,
		ownerID).Scan(&data.TotalBookings, &data.PendingBookings, &data.CompletedBookings)
	if err != nil {
		return nil, fmt.Errorf("dashboard bookings: %w", err)
	}

	err = p.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(price), 0) FROM bookings
		 WHERE owner_id = $1 AND status = 'confirmed'
		 AND created_at >= date_trunc('month', now())`,
		ownerID).Scan(&data.MonthlyRevenue)
	if err != nil {
		return nil, fmt.Errorf("dashboard revenue: %w", err)
	}

	recent, err := p.listBookings(ctx, "b.owner_id = $1", ownerID)
	if err != nil {
		return nil, err
	}
	if len(recent) > 3 {
		recent = recent[:3]
	}
	data.RecentBookings = recent

	return data, nil
}

// execOne runs an UPDATE that must touch exactly one row and maps a zero
// row count to ErrNotFound.
func (p *Postgres) execOne(ctx context.Context, query string, args ...any) error {
	tag, err := p.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
