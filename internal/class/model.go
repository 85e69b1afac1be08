package class

import "time"

type FitnessClass struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	StartTime      time.Time `db:"start_time" json:"start_time"`
	Instructor     string    `db:"instructor" json:"instructor"`
	AvailableSlots int       `db:"available_slots" json:"available_slots"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// ClassView is a listing entry with the start time localized to the
// requested timezone.
type ClassView struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	StartTime      string `json:"start_time"`
	Instructor     string `json:"instructor"`
	AvailableSlots int    `json:"available_slots"`
}

type ClassListResponse struct {
	Message string      `json:"message"`
	Data    []ClassView `json:"data"`
}

type CreateClassRequest struct {
	Name           string `json:"name" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
	Instructor     string `json:"instructor" binding:"required"`
	AvailableSlots int    `json:"available_slots" binding:"required,min=1"`
}
