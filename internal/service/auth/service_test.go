package auth

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
	nextID    int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*employee.Employee)}
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error {
	for _, existing := range r.employees {
		if existing.Email == e.Email {
			return employee.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	e.ID = fmt.Sprintf("emp-%d", r.nextID)
	clone := *e
	r.employees[e.ID] = &clone
	return nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			clone := *e
			return &clone, nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(ctx context.Context, limit, offset int) ([]employee.Employee, int, error) {
	return nil, 0, nil
}

func (r *fakeEmployeeRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	e, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.PasswordHash = passwordHash
	return nil
}

func (r *fakeEmployeeRepo) UpdateSalary(ctx context.Context, id string, monthlyBase int64) error {
	return nil
}

func (r *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	e, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.IsActive = false
	return nil
}

type fakeJWTService struct {
	counter int
	revoked map[string]bool
}

func newFakeJWTService() *fakeJWTService {
	return &fakeJWTService{revoked: make(map[string]bool)}
}

func (j *fakeJWTService) GenerateAccessToken(employeeID, email string, role employee.Role, gender employee.Gender) (string, int64, error) {
	j.counter++
	return fmt.Sprintf("access-%s-%d", employeeID, j.counter), 0, nil
}

func (j *fakeJWTService) GenerateRefreshToken(employeeID string) (string, int64, error) {
	j.counter++
	return fmt.Sprintf("refresh-%s-%d", employeeID, j.counter), 0, nil
}

func (j *fakeJWTService) ValidateRefreshToken(tokenString string) (string, error) {
	if j.revoked[tokenString] {
		return "", employee.ErrInvalidCredentials
	}
	var employeeID string
	var n int
	if _, err := fmt.Sscanf(tokenString, "refresh-emp-%d-%d", &n, new(int)); err != nil {
		return "", employee.ErrInvalidCredentials
	}
	employeeID = fmt.Sprintf("emp-%d", n)
	return employeeID, nil
}

func (j *fakeJWTService) JWTAuth() *jwtauth.JWTAuth { return nil }

func (j *fakeJWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{Name: "refresh_token", Value: token}
}

func (j *fakeJWTService) RevokeToken(token string) { j.revoked[token] = true }

func (j *fakeJWTService) IsTokenRevoked(token string) bool { return j.revoked[token] }

// fakeEmailService captures the last OTP code instead of sending anything.
type fakeEmailService struct {
	lastOTPCode string
	lastOTPTo   string
	failNext    bool
}

func (e *fakeEmailService) SendPasswordResetOTP(to, name, code, expiresAt string) error {
	if e.failNext {
		e.failNext = false
		return fmt.Errorf("smtp unreachable")
	}
	e.lastOTPTo = to
	e.lastOTPCode = code
	return nil
}

func (e *fakeEmailService) SendLeaveDecision(to, name, leaveTypeName, startDate, endDate, status string, reason *string) error {
	return nil
}

func newTestService() (*Service, *fakeEmployeeRepo, *fakeJWTService, *fakeEmailService) {
	repo := newFakeEmployeeRepo()
	jwtSvc := newFakeJWTService()
	emailSvc := &fakeEmailService{}
	return NewService(repo, jwtSvc, emailSvc), repo, jwtSvc, emailSvc
}

func registerDTO(email string) employee.RegisterDTO {
	return employee.RegisterDTO{
		Name:     "Asha Rao",
		Email:    email,
		Password: "s3cr3t-pass",
		Role:     "employee",
		Gender:   "female",
	}
}

func TestRegisterSetsDefaults(t *testing.T) {
	svc, _, _, _ := newTestService()

	emp, err := svc.Register(context.Background(), registerDTO("asha@example.com"))
	require.NoError(t, err)

	assert.Equal(t, int64(30000), emp.Salary.MonthlyBase)
	assert.Equal(t, "12", emp.Balances.Casual.String())
	assert.Equal(t, "90", emp.Balances.Maternity.String())
	assert.Equal(t, "0", emp.Balances.Paternity.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte("s3cr3t-pass")))
}

func TestRegisterCarriesDepartmentAndDesignation(t *testing.T) {
	svc, repo, _, _ := newTestService()

	department := "Engineering"
	designation := "Senior Engineer"
	dto := registerDTO("asha@example.com")
	dto.Department = &department
	dto.Designation = &designation

	emp, err := svc.Register(context.Background(), dto)
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Department)
	assert.Equal(t, "Engineering", *stored.Department)
	require.NotNil(t, stored.Designation)
	assert.Equal(t, "Senior Engineer", *stored.Designation)

	profile := stored.ToProfileResponse()
	assert.Equal(t, &designation, profile.Designation)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Register(context.Background(), registerDTO("asha@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerDTO("asha@example.com"))
	assert.ErrorIs(t, err, employee.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Register(context.Background(), registerDTO("asha@example.com"))
	require.NoError(t, err)

	emp, pair, err := svc.Login(context.Background(), employee.LoginDTO{
		Email: "asha@example.com", Password: "s3cr3t-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", emp.Email)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Register(context.Background(), registerDTO("asha@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), employee.LoginDTO{
		Email: "asha@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, employee.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, _, err := svc.Login(context.Background(), employee.LoginDTO{
		Email: "ghost@example.com", Password: "whatever",
	})
	assert.ErrorIs(t, err, employee.ErrInvalidCredentials)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	svc, repo, _, _ := newTestService()

	emp, err := svc.Register(context.Background(), registerDTO("asha@example.com"))
	require.NoError(t, err)
	require.NoError(t, repo.Deactivate(context.Background(), emp.ID))

	_, _, err = svc.Login(context.Background(), employee.LoginDTO{
		Email: "asha@example.com", Password: "s3cr3t-pass",
	})
	assert.ErrorIs(t, err, employee.ErrAccountInactive)
}

func TestRefreshRevokesOldToken(t *testing.T) {
	svc, _, jwtSvc, _ := newTestService()

	_, err := svc.Register(context.Background(), registerDTO("asha@example.com"))
	require.NoError(t, err)

	_, pair, err := svc.Login(context.Background(), employee.LoginDTO{
		Email: "asha@example.com", Password: "s3cr3t-pass",
	})
	require.NoError(t, err)

	newPair, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, newPair.RefreshToken)
	assert.True(t, jwtSvc.IsTokenRevoked(pair.RefreshToken))

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, employee.ErrInvalidCredentials)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _, _, emailSvc := newTestService()

	_, err := svc.Register(context.Background(), registerDTO("asha@example.com"))
	require.NoError(t, err)

	err = svc.ForgotPassword(context.Background(), employee.ForgotPasswordDTO{Email: "asha@example.com"})
	require.NoError(t, err)
	require.Len(t, emailSvc.lastOTPCode, 6)
	assert.Equal(t, "asha@example.com", emailSvc.lastOTPTo)

	err = svc.ResetPassword(context.Background(), employee.ResetPasswordDTO{
		Email: "asha@example.com", OTPCode: emailSvc.lastOTPCode, NewPassword: "brand-new-pass",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), employee.LoginDTO{
		Email: "asha@example.com", Password: "brand-new-pass",
	})
	assert.NoError(t, err)

	_, _, err = svc.Login(context.Background(), employee.LoginDTO{
		Email: "asha@example.com", Password: "s3cr3t-pass",
	})
	assert.ErrorIs(t, err, employee.ErrInvalidCredentials)
}

func TestOTPCodeIsSingleUse(t *testing.T) {
	svc, _, _, emailSvc := newTestService()

	_, err := svc.Register(context.Background(), registerDTO("asha@example.com"))
	require.NoError(t, err)

	err = svc.ForgotPassword(context.Background(), employee.ForgotPasswordDTO{Email: "asha@example.com"})
	require.NoError(t, err)
	code := emailSvc.lastOTPCode

	err = svc.ResetPassword(context.Background(), employee.ResetPasswordDTO{
		Email: "asha@example.com", OTPCode: code, NewPassword: "brand-new-pass",
	})
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), employee.ResetPasswordDTO{
		Email: "asha@example.com", OTPCode: code, NewPassword: "another-pass",
	})
	assert.ErrorIs(t, err, employee.ErrInvalidOTP)
}

func TestResetPasswordWrongCode(t *testing.T) {
	svc, _, _, emailSvc := newTestService()

	_, err := svc.Register(context.Background(), registerDTO("asha@example.com"))
	require.NoError(t, err)

	err = svc.ForgotPassword(context.Background(), employee.ForgotPasswordDTO{Email: "asha@example.com"})
	require.NoError(t, err)

	wrong := "000000"
	if emailSvc.lastOTPCode == wrong {
		wrong = "000001"
	}
	err = svc.ResetPassword(context.Background(), employee.ResetPasswordDTO{
		Email: "asha@example.com", OTPCode: wrong, NewPassword: "brand-new-pass",
	})
	assert.ErrorIs(t, err, employee.ErrInvalidOTP)
}

func TestForgotPasswordUnknownEmailSilent(t *testing.T) {
	svc, _, _, emailSvc := newTestService()

	err := svc.ForgotPassword(context.Background(), employee.ForgotPasswordDTO{Email: "ghost@example.com"})
	assert.NoError(t, err)
	assert.Empty(t, emailSvc.lastOTPCode)
}

func TestForgotPasswordEmailFailureDropsCode(t *testing.T) {
	svc, _, _, emailSvc := newTestService()

	_, err := svc.Register(context.Background(), registerDTO("asha@example.com"))
	require.NoError(t, err)

	emailSvc.failNext = true
	err = svc.ForgotPassword(context.Background(), employee.ForgotPasswordDTO{Email: "asha@example.com"})
	assert.Error(t, err)

	// The stored code was dropped with the failed send, so nothing resets.
	err = svc.ResetPassword(context.Background(), employee.ResetPasswordDTO{
		Email: "asha@example.com", OTPCode: "123456", NewPassword: "brand-new-pass",
	})
	assert.ErrorIs(t, err, employee.ErrInvalidOTP)
}
