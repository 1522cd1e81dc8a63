package platform

import "vgm/internal/domain"

// PlatformRequest is the body of POST and PUT /api/platforms.
type PlatformRequest struct {
	Name string `json:"name" validate:"required"`
	Year int    `json:"year" validate:"required,gte=1950,lte=2100"`
}

type ListResponse struct {
	Platforms []domain.Platform `json:"platforms"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
