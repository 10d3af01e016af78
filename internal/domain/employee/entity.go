package employee

import "time"

// Employee is directory data only: the classifier never consults it, it is
// attached to report rows for display.
type Employee struct {
	ID        string
	CompanyID string
	FullName  string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
