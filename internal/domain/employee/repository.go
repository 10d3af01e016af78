package employee

import "context"

type EmployeeRepository interface {
	// GetByID returns one employee scoped to a company, or
	// ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// ListByCompany returns all employees of a company ordered by name.
	ListByCompany(ctx context.Context, companyID string) ([]Employee, error)
}
