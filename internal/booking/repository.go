package booking

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrClassNotFound    = errors.New("fitness class not found")
	ErrNoSlotsAvailable = errors.New("no available slots for this class")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// BookClass decrements the class's slot count and inserts the booking row in
// a single transaction. The conditional UPDATE takes the row lock, so two
// concurrent attempts against a class with one remaining slot serialize and
// the second one sees zero rows affected.
func (r *repository) BookClass(ctx context.Context, classID int, clientName, clientEmail string) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE fitness_classes
		SET available_slots = available_slots - 1
		WHERE id = $1 AND available_slots > 0
	`, classID)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rowsAffected == 0 {
		var exists bool
		err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM fitness_classes WHERE id = $1)`, classID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrClassNotFound
		}
		return nil, ErrNoSlotsAvailable
	}

	query := `
		INSERT INTO bookings (fitness_class_id, client_name, client_email)
		VALUES ($1, $2, $3)
		RETURNING id, fitness_class_id, client_name, client_email, booked_at
	`

	var booking Booking
	if err := tx.GetContext(ctx, &booking, query, classID, clientName, clientEmail); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) ([]BookingWithClass, error) {
	query := `
		SELECT
			b.id,
			b.fitness_class_id,
			b.client_name,
			b.client_email,
			b.booked_at,
			fc.name AS class_name,
			fc.start_time AS class_start_time,
			fc.instructor
		FROM bookings b
		JOIN fitness_classes fc ON b.fitness_class_id = fc.id
		WHERE LOWER(b.client_email) = LOWER($1)
		ORDER BY b.booked_at DESC
	`

	bookings := []BookingWithClass{}
	err := r.db.SelectContext(ctx, &bookings, query, email)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) CountForClass(ctx context.Context, classID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE fitness_class_id = $1
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, classID)
	if err != nil {
		return 0, err
	}

	return count, nil
}
