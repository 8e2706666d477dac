package employee

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/actor"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	userRepo user.UserRepository
}

func NewEmployeeService(userRepo user.UserRepository) user.EmployeeService {
	return &EmployeeServiceImpl{userRepo: userRepo}
}

// CreateEmployee implements user.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req user.CreateEmployeeRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	act, err := actor.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !act.IsAdmin() {
		return user.UserResponse{}, user.ErrAdminPrivilegeRequired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	avatar := req.AvatarURL
	if avatar == nil {
		generated := fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(req.Name))
		avatar = &generated
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Name:               req.Name,
		PasswordHash:       string(hashed),
		Role:               user.RoleEmployee,
		WalletBalance:      req.InitialBalance,
		BaseMonthlySalary:  req.BaseMonthlySalary,
		OvertimeHourlyRate: req.OvertimeHourlyRate,
		AvatarURL:          avatar,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// List implements user.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	employees, err := s.userRepo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(employees))
	for _, u := range employees {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// Get implements user.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}
