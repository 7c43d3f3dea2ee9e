package catalog

import (
	"context"
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

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/rooms", h.ListRooms)
	v1.GET("/rooms/:id", h.GetRoom)
	v1.GET("/room-types", h.ListRoomTypes)
	v1.GET("/room-types/:id", h.GetRoomType)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	rooms := admin.Group("/rooms")
	{
		rooms.POST("", h.CreateRoom)
		rooms.PUT("/:id", h.UpdateRoom)
		rooms.DELETE("/:id", h.DeleteRoom)
		rooms.POST("/:id/restore", h.RestoreRoom)
	}

	roomTypes := admin.Group("/room-types")
	{
		roomTypes.POST("", h.CreateRoomType)
		roomTypes.PUT("/:id", h.UpdateRoomType)
		roomTypes.DELETE("/:id", h.DeleteRoomType)
	}

	properties := admin.Group("/properties")
	{
		properties.GET("", h.ListProperties)
		properties.POST("", h.CreateProperty)
		properties.PUT("/:id", h.UpdateProperty)
		properties.DELETE("/:id", h.DeleteProperty)
	}

	services := admin.Group("/services")
	{
		services.GET("", h.ListServices)
		services.POST("", h.CreateService)
		services.PUT("/:id", h.UpdateService)
		services.DELETE("/:id", h.DeleteService)
		services.POST("/:id/restore", h.RestoreService)
	}
}

/* ---------- ROOMS ---------- */

func (h *Handler) ListRooms(c *gin.Context) {
	var q RoomListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid list query")
		return
	}

	rooms, total, err := h.service.ListRooms(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err, "Failed to list rooms")
		return
	}
	response.Paginated(c, rooms, total, q.Page, q.PerPage)
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to get room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to create room")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	room, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err, "Failed to update room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	h.deleteByID(c, h.service.DeleteRoom, "Failed to delete room")
}

func (h *Handler) RestoreRoom(c *gin.Context) {
	h.deleteByID(c, h.service.RestoreRoom, "Failed to restore room")
}

/* ---------- ROOM TYPES ---------- */

func (h *Handler) ListRoomTypes(c *gin.Context) {
	var q NamedListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid list query")
		return
	}

	types, total, err := h.service.ListRoomTypes(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err, "Failed to list room types")
		return
	}
	response.Paginated(c, types, total, q.Page, q.PerPage)
}

func (h *Handler) GetRoomType(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rt, err := h.service.GetRoomType(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to get room type")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_type": rt})
}

func (h *Handler) CreateRoomType(c *gin.Context) {
	var req CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	rt, err := h.service.CreateRoomType(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to create room type")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room_type": rt})
}

func (h *Handler) UpdateRoomType(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	rt, err := h.service.UpdateRoomType(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err, "Failed to update room type")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_type": rt})
}

func (h *Handler) DeleteRoomType(c *gin.Context) {
	h.deleteByID(c, h.service.DeleteRoomType, "Failed to delete room type")
}

/* ---------- PROPERTIES ---------- */

func (h *Handler) ListProperties(c *gin.Context) {
	properties, err := h.service.ListProperties(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.fail(c, err, "Failed to list properties")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"properties": properties})
}

func (h *Handler) CreateProperty(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	p, err := h.service.CreateProperty(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to create property")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"property": p})
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	p, err := h.service.UpdateProperty(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err, "Failed to update property")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"property": p})
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	h.deleteByID(c, h.service.DeleteProperty, "Failed to delete property")
}

/* ---------- SERVICES ---------- */

func (h *Handler) ListServices(c *gin.Context) {
	var q NamedListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid list query")
		return
	}

	services, total, err := h.service.ListServices(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err, "Failed to list services")
		return
	}
	response.Paginated(c, services, total, q.Page, q.PerPage)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to create service")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"service": svc})
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	svc, err := h.service.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err, "Failed to update service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

func (h *Handler) DeleteService(c *gin.Context) {
	h.deleteByID(c, h.service.DeleteService, "Failed to delete service")
}

func (h *Handler) RestoreService(c *gin.Context) {
	h.deleteByID(c, h.service.RestoreService, "Failed to restore service")
}

func (h *Handler) deleteByID(c *gin.Context, fn func(ctx context.Context, id uint) error, failMsg string) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), id); err != nil {
		h.fail(c, err, failMsg)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Catalog entry not found")
	case errors.Is(err, ErrInvalidRoomStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Invalid room status")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return uint(id), true
}
