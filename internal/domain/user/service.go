package user

import "context"

// EmployeeService covers admin-side provisioning. Users are created here and
// never deleted; after creation only the wallet balance and the open-shift
// back-reference change outside explicit admin edits.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	Get(ctx context.Context, id string) (UserResponse, error)
}
