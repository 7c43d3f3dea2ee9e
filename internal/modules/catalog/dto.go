package catalog

type PropertyValueRequest struct {
	PropertyID uint   `json:"property_id" binding:"required"`
	Value      string `json:"value" binding:"required"`
}

type CreateRoomTypeRequest struct {
	Name       string                 `json:"name" binding:"required"`
	Price      int64                  `json:"price" binding:"required"`
	Properties []PropertyValueRequest `json:"properties"`
}

type UpdateRoomTypeRequest struct {
	Name       string                 `json:"name" binding:"required"`
	Price      int64                  `json:"price" binding:"required"`
	Properties []PropertyValueRequest `json:"properties"`
}

type CreateRoomRequest struct {
	Name          string `json:"name" binding:"required"`
	RoomTypeID    uint   `json:"room_type_id" binding:"required"`
	ThumbnailPath string `json:"thumbnail_path"`
	Description   string `json:"description"`
	Status        int    `json:"status"`
}

type UpdateRoomRequest struct {
	Name          string `json:"name" binding:"required"`
	RoomTypeID    uint   `json:"room_type_id" binding:"required"`
	ThumbnailPath string `json:"thumbnail_path"`
	Description   string `json:"description"`
	Status        int    `json:"status" binding:"required"`
}

type RoomListQuery struct {
	Name       string `form:"name"`
	RoomTypeID uint   `form:"room_type_id"`
	Status     int    `form:"status"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

type PropertyRequest struct {
	Name string `json:"name" binding:"required"`
}

type ServiceRequest struct {
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"required"`
}

type NamedListQuery struct {
	Name    string `form:"name"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
