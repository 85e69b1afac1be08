package booking

import "time"

type Booking struct {
	ID             int       `db:"id" json:"id"`
	FitnessClassID int       `db:"fitness_class_id" json:"fitness_class"`
	ClientName     string    `db:"client_name" json:"client_name"`
	ClientEmail    string    `db:"client_email" json:"client_email"`
	BookedAt       time.Time `db:"booked_at" json:"booked_at"`
}

type BookingWithClass struct {
	Booking
	ClassName      string    `db:"class_name" json:"class_name"`
	ClassStartTime time.Time `db:"class_start_time" json:"class_start_time"`
	Instructor     string    `db:"instructor" json:"instructor"`
}

type BookRequest struct {
	FitnessClass int    `json:"fitness_class" binding:"required"`
	ClientName   string `json:"client_name" binding:"required"`
	ClientEmail  string `json:"client_email" binding:"required"`
}

type BookingCreatedResponse struct {
	Message   string `json:"message" example:"Booking successful."`
	BookingID int    `json:"booking_id" example:"1"`
}

type BookingListResponse struct {
	Message string             `json:"message"`
	Count   int                `json:"count"`
	Data    []BookingWithClass `json:"data"`
}

// ClassBookingStats summarizes how booked a class is.
type ClassBookingStats struct {
	ClassID        int    `json:"class_id"`
	ClassName      string `json:"class_name"`
	BookedCount    int    `json:"booked_count"`
	AvailableSlots int    `json:"available_slots"`
	IsFull         bool   `json:"is_full"`
}
