package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/employee"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/email"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/jwt"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/otp"
)

const (
	defaultMonthlySalary = 30000
	otpTTL               = 10 * time.Minute
)

type Service struct {
	EmployeeRepository employee.Repository
	JWTService         jwt.Service
	EmailService       email.EmailService
	otpStore           *otp.Store
}

func NewService(employeeRepository employee.Repository, jwtService jwt.Service, emailService email.EmailService) *Service {
	return &Service{
		EmployeeRepository: employeeRepository,
		JWTService:         jwtService,
		EmailService:       emailService,
		otpStore:           otp.NewStore(),
	}
}

type TokenPair struct {
	AccessToken      string `json:"access_token"`
	AccessExpiresAt  int64  `json:"access_expires_at"`
	RefreshToken     string `json:"-"`
	RefreshExpiresAt int64  `json:"-"`
}

// Register creates an employee account with the default annual grants and
// salary. Maternity and paternity grants follow the recorded gender.
func (s *Service) Register(ctx context.Context, dto employee.RegisterDTO) (*employee.Employee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	gender := employee.Gender(dto.Gender)
	emp := &employee.Employee{
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: string(hash),
		Role:         employee.Role(dto.Role),
		Gender:       gender,
		Department:   dto.Department,
		Designation:  dto.Designation,
		IsActive:     true,
		JoinedAt:     time.Now().UTC(),
		Salary:       employee.SalaryProfile{MonthlyBase: defaultMonthlySalary},
		Balances:     employee.DefaultBalances(gender),
	}

	if err := s.EmployeeRepository.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *Service) Login(ctx context.Context, dto employee.LoginDTO) (*employee.Employee, *TokenPair, error) {
	emp, err := s.EmployeeRepository.GetByEmail(ctx, dto.Email)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return nil, nil, employee.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, nil, employee.ErrInvalidCredentials
	}
	if !emp.IsActive {
		return nil, nil, employee.ErrAccountInactive
	}

	pair, err := s.issueTokens(emp)
	if err != nil {
		return nil, nil, err
	}

	return emp, pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair and revokes
// the old refresh token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	employeeID, err := s.JWTService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, employee.ErrInvalidCredentials
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	s.JWTService.RevokeToken(refreshToken)

	return s.issueTokens(emp)
}

func (s *Service) Logout(refreshToken string) {
	if refreshToken != "" {
		s.JWTService.RevokeToken(refreshToken)
	}
}

func (s *Service) Profile(ctx context.Context, employeeID string) (*employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, employeeID)
}

// ForgotPassword issues a single-use OTP bound to the email and sends it out.
// Unknown emails succeed silently so the endpoint does not confirm which
// addresses exist.
func (s *Service) ForgotPassword(ctx context.Context, dto employee.ForgotPasswordDTO) error {
	emp, err := s.EmployeeRepository.GetByEmail(ctx, dto.Email)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			slog.Info("password reset requested for unknown email", "email", dto.Email)
			return nil
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	code, err := generateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	expiresAt := time.Now().Add(otpTTL)
	s.otpStore.Put(emp.Email, code, otpTTL)

	if err := s.EmailService.SendPasswordResetOTP(emp.Email, emp.Name, code, expiresAt.Format(time.RFC1123)); err != nil {
		s.otpStore.Delete(emp.Email)
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	return nil
}

// ResetPassword consumes the OTP and replaces the password. A wrong or
// expired code fails without burning any other pending codes.
func (s *Service) ResetPassword(ctx context.Context, dto employee.ResetPasswordDTO) error {
	emp, err := s.EmployeeRepository.GetByEmail(ctx, dto.Email)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return employee.ErrInvalidOTP
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if !s.otpStore.Consume(emp.Email, dto.OTPCode) {
		return employee.ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.EmployeeRepository.UpdatePassword(ctx, emp.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *Service) issueTokens(emp *employee.Employee) (*TokenPair, error) {
	accessToken, accessExpiresAt, err := s.JWTService.GenerateAccessToken(emp.ID, emp.Email, emp.Role, emp.Gender)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.JWTService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
