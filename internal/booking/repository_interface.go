package booking

import "context"

type Repository interface {
	BookClass(ctx context.Context, classID int, clientName, clientEmail string) (*Booking, error)
	FindByEmail(ctx context.Context, email string) ([]BookingWithClass, error)
	CountForClass(ctx context.Context, classID int) (int, error)
}
