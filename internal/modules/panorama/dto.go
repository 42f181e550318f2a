package panorama

import "museumbackend/internal/domain"

type CreatePanoramaRequest struct {
	Title       string          `form:"title" binding:"required"`
	Description string          `form:"description"`
	RoomType    domain.RoomType `form:"room_type" binding:"required"`
}

type UpdatePanoramaRequest struct {
	Title       string          `form:"title"`
	Description string          `form:"description"`
	RoomType    domain.RoomType `form:"room_type"`
}

type ListQuery struct {
	Search string `form:"search"`
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset"`
}
