package booking

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"hotelier/internal/domain"
	"hotelier/internal/pkg/response"
	"hotelier/internal/pkg/validator"
	"hotelier/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/rooms/availability", h.CheckAvailability)
}

func (h *Handler) RegisterGuestRoutes(protected *gin.RouterGroup) {
	protected.GET("/bookings/my", h.ListMine)
	protected.POST("/bookings", h.Create)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	bookings := admin.Group("/bookings")
	{
		bookings.GET("", h.List)
		bookings.GET("/:id", h.Get)
		bookings.PUT("/:id", h.Update)
		bookings.DELETE("/:id", h.Delete)
		bookings.POST("/:id/confirm", h.Confirm)
		bookings.POST("/:id/cancel", h.Cancel)
		bookings.POST("/:id/no-show", h.NoShow)
		bookings.POST("/:id/check-in", h.CheckIn)
		bookings.POST("/:id/checkout", h.Checkout)
	}
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid availability query")
		return
	}

	rooms, err := h.service.CheckRoomAvailability(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to check availability")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking payload", errs)
		return
	}

	b, err := h.service.Create(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		h.fail(c, err, "Failed to create booking")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) List(c *gin.Context) {
	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid list query")
		return
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err, "Failed to list bookings")
		return
	}
	response.Paginated(c, bookings, total, filter.Page, filter.PerPage)
}

func (h *Handler) ListMine(c *gin.Context) {
	actor := actorFrom(c)
	bookings, err := h.service.ListByUser(c.Request.Context(), actor.UserID)
	if err != nil {
		h.fail(c, err, "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to get booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking payload", errs)
		return
	}

	b, err := h.service.Update(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		h.fail(c, err, "Failed to update booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Confirm(c *gin.Context) {
	h.statusChange(c, h.service.Confirm, "Failed to confirm booking")
}

func (h *Handler) Cancel(c *gin.Context) {
	h.statusChange(c, h.service.Cancel, "Failed to cancel booking")
}

func (h *Handler) NoShow(c *gin.Context) {
	h.statusChange(c, h.service.NoShow, "Failed to mark booking as no-show")
}

func (h *Handler) CheckIn(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.CheckInGuest(c.Request.Context(), id, req.DetailIDs); err != nil {
		h.fail(c, err, "Failed to check in")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"checked_in": true})
}

func (h *Handler) Checkout(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	b, err := h.service.Checkout(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to check out")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Failed to delete booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) statusChange(c *gin.Context, fn func(ctx context.Context, id uint) error, failMsg string) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), id); err != nil {
		h.fail(c, err, failMsg)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	var conflict *ConflictError
	var roomMissing *RoomNotFoundError

	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.As(err, &roomMissing):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", roomMissing.Error())
	case errors.As(err, &conflict), errors.Is(err, repository.ErrOverlap):
		msg := "Room is not available for the selected time"
		if conflict != nil {
			msg = conflict.Error()
		}
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", msg)
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking payload")
	case errors.Is(err, ErrCheckedInRemoval):
		response.Error(c, http.StatusConflict, "ROOM_CHECKED_IN", "Cannot remove a room that is checked in")
	case errors.Is(err, ErrNotCheckedIn):
		response.Error(c, http.StatusConflict, "NOT_CHECKED_IN", "Booking is not checked in")
	case errors.Is(err, ErrNotDeletable):
		response.Error(c, http.StatusConflict, "BOOKING_ACTIVE", "Only finished or cancelled bookings can be deleted")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func actorFrom(c *gin.Context) Actor {
	actor := Actor{Role: domain.RoleGuest}
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			actor.UserID = id
		}
	}
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok {
			actor.Role = domain.UserRole(role)
		}
	}
	return actor
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return uint(id), true
}
