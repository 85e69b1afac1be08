package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// ValidationErrorResponse is the envelope for rejected booking requests.
type ValidationErrorResponse struct {
	Message string            `json:"message" example:"Booking request is not valid."`
	Errors  map[string]string `json:"errors"`
}
