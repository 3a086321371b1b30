package service

import (
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"errors"
	"testing"
)

func newAuthService(t *testing.T) (*AuthService, func() *model.User) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testConfig())

	register := func() *model.User {
		user := &model.User{
			Email:     "somchai@example.com",
			Password:  "password123",
			FirstName: "สมชาย",
			LastName:  "ใจดี",
			Role:      model.RoleStudent,
		}
		if err := svc.Register(user); err != nil {
			t.Fatalf("Register: %v", err)
		}
		return user
	}
	return svc, register
}

func TestRegisterHashesPassword(t *testing.T) {
	_, register := newAuthService(t)
	user := register()

	if user.Password == "password123" {
		t.Error("password stored in plaintext")
	}
	if !user.IsActive {
		t.Error("new account should be active")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, register := newAuthService(t)
	register()

	err := svc.Register(&model.User{
		Email:     "somchai@example.com",
		Password:  "another",
		FirstName: "สมหญิง",
		LastName:  "ใจดี",
	})
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Errorf("err = %v, want ErrEmailRegistered", err)
	}
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	svc, register := newAuthService(t)
	user := register()

	token, got, err := svc.Login("somchai@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("user id = %d, want %d", got.ID, user.ID)
	}

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != model.RoleStudent {
		t.Errorf("claims = %+v, want user %d", claims, user.ID)
	}
}

// อีเมลไม่มีในระบบกับรหัสผ่านผิดต้องให้ error ตัวเดียวกัน
func TestLoginFailureIsUniform(t *testing.T) {
	svc, register := newAuthService(t)
	register()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "password123"},
		{"wrong password", "somchai@example.com", "wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(tt.email, tt.password)
			if !errors.Is(err, util.ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLoginSuspendedAccount(t *testing.T) {
	svc, register := newAuthService(t)
	user := register()

	if err := svc.UserRepo.DB.Model(user).Update("is_active", false).Error; err != nil {
		t.Fatalf("suspend user: %v", err)
	}

	_, _, err := svc.Login("somchai@example.com", "password123")
	if !errors.Is(err, util.ErrAccountSuspended) {
		t.Errorf("err = %v, want ErrAccountSuspended", err)
	}
}
