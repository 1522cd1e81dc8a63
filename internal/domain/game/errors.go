package game

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")

	ErrUnsupportedExpand         = errors.New("unsupported $expand value")
	ErrMalformedFilter           = errors.New("malformed $filter expression")
	ErrUnsupportedFilterField    = errors.New("unsupported $filter field")
	ErrUnsupportedFilterOperator = errors.New("unsupported $filter operator")
	ErrInvalidFilterValue        = errors.New("invalid $filter value")
)
