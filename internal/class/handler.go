package class

import (
	"errors"
	"net/http"

	"fitstudio/internal/api"
	"fitstudio/internal/logger"
	"fitstudio/internal/timezone"
	"fitstudio/internal/validation"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      List upcoming classes
// @Description  Returns upcoming fitness classes with start times localized to the requested timezone.
// @Tags         classes
// @Produce      json
// @Param        timezone query string false "IANA timezone name" default(Asia/Kolkata)
// @Success      200 {object} class.ClassListResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes/ [get]
func (h *Handler) ListClasses(c *gin.Context) {
	tzName := c.DefaultQuery("timezone", timezone.HomeZone)

	views, err := h.service.ListUpcoming(c.Request.Context(), tzName)
	if err != nil {
		if errors.Is(err, timezone.ErrInvalidTimezone) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid timezone"})
			return
		}
		logger.Errorf("Failed to fetch classes for timezone %s: %v", tzName, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch classes"})
		return
	}

	logger.Infof("Returned %d classes for timezone %s", len(views), tzName)
	c.JSON(http.StatusOK, ClassListResponse{
		Message: "Classes fetched successfully for the specified timezone.",
		Data:    views,
	})
}

// @Summary      Create a class
// @Description  Admin-only: create a new fitness class.
// @Tags         admin,classes
// @Accept       json
// @Produce      json
// @Param        request body class.CreateClassRequest true "Class payload"
// @Success      201 {object} class.FitnessClass
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
			Message: "Class request is not valid.",
			Errors:  validation.FieldErrors(err),
		})
		return
	}

	class, err := h.service.CreateClass(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidStartTime) {
			c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
				Message: "Class request is not valid.",
				Errors:  map[string]string{"start_time": "Invalid start time format."},
			})
			return
		}
		logger.Errorf("Failed to create class: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create class"})
		return
	}

	logger.Infof("Class %q created with id %d", class.Name, class.ID)
	c.JSON(http.StatusCreated, class)
}
