package class

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateClass(ctx context.Context, name string, startTime time.Time, instructor string, availableSlots int) (*FitnessClass, error) {
	query := `
		INSERT INTO fitness_classes (name, start_time, instructor, available_slots)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, start_time, instructor, available_slots, created_at
	`

	var class FitnessClass
	err := r.db.GetContext(ctx, &class, query, name, startTime, instructor, availableSlots)
	if err != nil {
		return nil, err
	}

	return &class, nil
}

func (r *repository) ListUpcoming(ctx context.Context, now time.Time) ([]FitnessClass, error) {
	query := `
		SELECT id, name, start_time, instructor, available_slots, created_at
		FROM fitness_classes
		WHERE start_time >= $1
		ORDER BY start_time ASC
	`

	var classes []FitnessClass
	err := r.db.SelectContext(ctx, &classes, query, now)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*FitnessClass, error) {
	query := `
		SELECT id, name, start_time, instructor, available_slots, created_at
		FROM fitness_classes
		WHERE id = $1
	`

	var class FitnessClass
	err := r.db.GetContext(ctx, &class, query, id)
	if err != nil {
		return nil, err
	}

	return &class, nil
}
