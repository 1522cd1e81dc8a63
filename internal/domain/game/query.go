package game

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"vgm/internal/domain"
)

// FilterField is a games column that $filter may compare against.
type FilterField string

const (
	FieldPlatform FilterField = "platform"
	FieldGenre    FilterField = "genre"
	FieldStatus   FilterField = "status"
	FieldYear     FilterField = "year"
)

// column is always one of a fixed set, so it is safe to splice into SQL.
func (f FilterField) column() string {
	switch f {
	case FieldPlatform:
		return "games.platform"
	case FieldGenre:
		return "games.genre"
	case FieldStatus:
		return "games.status"
	case FieldYear:
		return "games.year"
	}
	return ""
}

// Filter is a parsed "<field> eq <value>" expression. Value holds an int64
// for platform, int for year, domain.Genre or domain.Status otherwise.
type Filter struct {
	Field FilterField
	Value any
}

type ListQuery struct {
	ExpandPlatform bool
	Filter         *Filter
	Search         string
}

var filterExpr = regexp.MustCompile(`^(\S+)\s+(\S+)\s+(.+)$`)

// ParseListQuery validates the $expand, $filter and $search parameters of a
// games listing. Anything it does not understand is an error.
func ParseListQuery(expand, filter, search string) (ListQuery, error) {
	var q ListQuery

	exp, err := ParseExpand(expand)
	if err != nil {
		return q, err
	}
	q.ExpandPlatform = exp

	f, err := ParseFilter(filter)
	if err != nil {
		return q, err
	}
	q.Filter = f

	q.Search = search
	return q, nil
}

// ParseExpand reports whether the platform should be embedded.
func ParseExpand(expand string) (bool, error) {
	switch strings.TrimSpace(expand) {
	case "":
		return false, nil
	case "platform":
		return true, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnsupportedExpand, expand)
}

// ParseFilter parses "<field> eq <value>". The value may be single-quoted.
// An empty expression yields a nil filter.
func ParseFilter(expr string) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	m := filterExpr.FindStringSubmatch(expr)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedFilter, expr)
	}
	field, op, raw := FilterField(m[1]), m[2], unquote(strings.TrimSpace(m[3]))

	if field.column() == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFilterField, m[1])
	}
	if op != "eq" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFilterOperator, op)
	}

	f := &Filter{Field: field}
	switch field {
	case FieldPlatform:
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: platform %q", ErrInvalidFilterValue, raw)
		}
		f.Value = id
	case FieldYear:
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: year %q", ErrInvalidFilterValue, raw)
		}
		f.Value = year
	case FieldGenre:
		g, err := domain.ParseGenre(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFilterValue, err)
		}
		f.Value = g
	case FieldStatus:
		s, err := domain.ParseStatus(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFilterValue, err)
		}
		f.Value = s
	}
	return f, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

const (
	gameColumns = `games.id, games.name, games.year, games.platform, games.genre, games.status, games.rating`

	selectRaw      = `SELECT ` + gameColumns + ` FROM games`
	selectExpanded = `SELECT ` + gameColumns + `, platforms.id AS platform_id, platforms.name AS platform_name, platforms.year AS platform_year ` +
		`FROM games LEFT JOIN platforms ON games.platform = platforms.id`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BuildListSQL composes the listing statement. Placeholders are "?" and must
// be rebound for the target dialect.
func BuildListSQL(q ListQuery) (string, []any) {
	var (
		sb    strings.Builder
		conds []string
		args  []any
	)

	sb.WriteString(projection(q.ExpandPlatform))

	if q.Filter != nil {
		conds = append(conds, q.Filter.Field.column()+" = ?")
		args = append(args, filterArg(q.Filter.Value))
	}
	if q.Search != "" {
		conds = append(conds, `LOWER(games.name) LIKE LOWER(?) ESCAPE '\'`)
		args = append(args, "%"+likeEscaper.Replace(q.Search)+"%")
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY games.id")

	return sb.String(), args
}

// BuildGetSQL composes the single-row lookup.
func BuildGetSQL(expandPlatform bool, id int64) (string, []any) {
	return projection(expandPlatform) + " WHERE games.id = ?", []any{id}
}

func projection(expandPlatform bool) string {
	if expandPlatform {
		return selectExpanded
	}
	return selectRaw
}

// enums go to the driver as plain strings
func filterArg(v any) any {
	switch t := v.(type) {
	case domain.Genre:
		return string(t)
	case domain.Status:
		return string(t)
	}
	return v
}
