package invoice

import (
	"errors"
	"net/http"
	"strconv"

	"hotelier/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	invoices := admin.Group("/bookings/:id/invoice-details")
	{
		invoices.GET("", h.List)
		invoices.PUT("", h.Save)
		invoices.DELETE("/:detail_id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	bookingID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	details, err := h.service.List(c.Request.Context(), bookingID)
	if err != nil {
		h.fail(c, err, "Failed to list invoice details")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"invoice_details": details})
}

func (h *Handler) Save(c *gin.Context) {
	bookingID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	details, err := h.service.Save(c.Request.Context(), bookingID, req)
	if err != nil {
		h.fail(c, err, "Failed to save invoice details")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"invoice_details": details})
}

func (h *Handler) Delete(c *gin.Context) {
	bookingID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	detailID, ok := uintParam(c, "detail_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), bookingID, detailID); err != nil {
		h.fail(c, err, "Failed to delete invoice detail")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found or not open for charges")
	case errors.Is(err, ErrServiceNotFound):
		response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
	case errors.Is(err, ErrDetailNotFound):
		response.Error(c, http.StatusNotFound, "DETAIL_NOT_FOUND", "Invoice detail not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid invoice payload")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(v), true
}
