package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByEcode(ctx context.Context, ecode string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// ListActive returns every employee whose status is not Inactive.
	ListActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
}
