package game

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"vgm/internal/domain"
)

// Repository runs the composed games SQL through sqlx.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// expandedRow is a games row joined with its platform. The platform columns
// are NULL when the foreign key dangles.
type expandedRow struct {
	domain.GameRaw
	PlatformID   sql.NullInt64  `db:"platform_id"`
	PlatformName sql.NullString `db:"platform_name"`
	PlatformYear sql.NullInt64  `db:"platform_year"`
}

func (r expandedRow) toGame() domain.Game {
	p := domain.Platform{ID: r.Platform}
	if r.PlatformID.Valid {
		p.ID = r.PlatformID.Int64
	}
	if r.PlatformName.Valid {
		p.Name = r.PlatformName.String
	}
	if r.PlatformYear.Valid {
		p.Year = int(r.PlatformYear.Int64)
	}
	return domain.Game{
		ID:       r.ID,
		Name:     r.Name,
		Year:     r.Year,
		Platform: p,
		Genre:    r.Genre,
		Status:   r.Status,
		Rating:   r.Rating,
	}
}

func (r *Repository) List(ctx context.Context, q ListQuery) ([]domain.GameRaw, error) {
	q.ExpandPlatform = false
	query, args := BuildListSQL(q)

	games := []domain.GameRaw{}
	if err := r.db.SelectContext(ctx, &games, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return games, nil
}

func (r *Repository) ListExpanded(ctx context.Context, q ListQuery) ([]domain.Game, error) {
	q.ExpandPlatform = true
	query, args := BuildListSQL(q)

	var rows []expandedRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(rows))
	for _, row := range rows {
		games = append(games, row.toGame())
	}
	return games, nil
}

// GetByID returns nil, nil when no row matches.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.GameRaw, error) {
	query, args := BuildGetSQL(false, id)

	var g domain.GameRaw
	err := r.db.GetContext(ctx, &g, r.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// GetExpandedByID returns nil, nil when no row matches.
func (r *Repository) GetExpandedByID(ctx context.Context, id int64) (*domain.Game, error) {
	query, args := BuildGetSQL(true, id)

	var row expandedRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	g := row.toGame()
	return &g, nil
}

// Create inserts g and stores the generated id on it.
func (r *Repository) Create(ctx context.Context, g *domain.GameRaw) error {
	query := `
		INSERT INTO games (name, year, platform, genre, status, rating)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	return r.db.QueryRowxContext(ctx, r.db.Rebind(query),
		g.Name, g.Year, g.Platform, string(g.Genre), string(g.Status), g.Rating,
	).Scan(&g.ID)
}

// Update replaces every column of the row keyed by g.ID. It reports whether
// a row matched.
func (r *Repository) Update(ctx context.Context, g *domain.GameRaw) (bool, error) {
	query := `
		UPDATE games
		SET name = ?, year = ?, platform = ?, genre = ?, status = ?, rating = ?
		WHERE id = ?
	`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		g.Name, g.Year, g.Platform, string(g.Genre), string(g.Status), g.Rating, g.ID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Delete reports whether a row existed.
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM games WHERE id = ?`), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// CountByPlatform counts games whose platform column equals platformID.
func (r *Repository) CountByPlatform(ctx context.Context, platformID int64) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, r.db.Rebind(`SELECT COUNT(*) FROM games WHERE platform = ?`), platformID)
	return n, err
}
