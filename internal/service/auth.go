package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository"
	"motorent-backend/internal/security"
)

type authService struct {
	employeeRepo repository.EmployeeRepository
	tokens       security.TokenManager
}

func NewAuthService(employeeRepo repository.EmployeeRepository, tokens security.TokenManager) AuthService {
	return &authService{employeeRepo: employeeRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, *domain.Employee, error) {
	employee, err := s.employeeRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if domain.IsNotFound(err) {
			// Same error as a wrong password so login probing cannot tell the
			// two cases apart.
			return "", "", nil, domain.NewValidationError("invalid email or password")
		}
		return "", "", nil, wrapSystem(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, domain.NewValidationError("invalid email or password")
	}

	access, err := s.tokens.GenerateAccessToken(employee.ID, employee.Email, employee.Role)
	if err != nil {
		return "", "", nil, wrapSystem(err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(employee.ID, employee.Email)
	if err != nil {
		return "", "", nil, wrapSystem(err)
	}
	return access, refresh, employee, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", domain.NewValidationError("invalid or expired refresh token")
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", domain.NewValidationError("invalid or expired refresh token")
	}

	employee, err := s.employeeRepo.GetByID(ctx, claims.EmployeeID)
	if err != nil {
		return "", "", wrapSystem(err)
	}

	access, err := s.tokens.GenerateAccessToken(employee.ID, employee.Email, employee.Role)
	if err != nil {
		return "", "", wrapSystem(err)
	}
	newRefresh, err := s.tokens.GenerateRefreshToken(employee.ID, employee.Email)
	if err != nil {
		return "", "", wrapSystem(err)
	}
	return access, newRefresh, nil
}

func (s *authService) SeedAdmin(ctx context.Context, name, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.employeeRepo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !domain.IsNotFound(err) {
		return wrapSystem(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return wrapSystem(err)
	}
	admin := &domain.Employee{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.EmployeeRoleAdmin,
	}
	if err := s.employeeRepo.Create(ctx, admin); err != nil {
		return wrapSystem(err)
	}
	logger.Info("Seeded admin employee", "email", email)
	return nil
}
