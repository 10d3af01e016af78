package attendance

import "errors"

var (
	ErrInvalidMonth = errors.New("month must be a valid YYYY-MM value")
)
