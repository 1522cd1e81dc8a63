package game

import "vgm/internal/domain"

// GameRequest is the body of POST and PUT /api/games.
type GameRequest struct {
	Name     string         `json:"name" validate:"required"`
	Year     int            `json:"year" validate:"required,gte=1950,lte=2100"`
	Platform int64          `json:"platform" validate:"required,gt=0"`
	Genre    domain.Genre   `json:"genre" validate:"required,genre"`
	Status   *domain.Status `json:"status" validate:"omitempty,status"`
	Rating   *int           `json:"rating" validate:"omitempty,min=1,max=5"`
}

// toRow applies the column defaults: status Not Started, rating null.
func (r *GameRequest) toRow(id int64) *domain.GameRaw {
	g := &domain.GameRaw{
		ID:       id,
		Name:     r.Name,
		Year:     r.Year,
		Platform: r.Platform,
		Genre:    r.Genre,
		Status:   domain.StatusNotStarted,
		Rating:   r.Rating,
	}
	if r.Status != nil {
		g.Status = *r.Status
	}
	return g
}

type ListResponse struct {
	Games []domain.GameRaw `json:"games"`
}

type ExpandedListResponse struct {
	Games []domain.Game `json:"games"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
