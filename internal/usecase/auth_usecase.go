package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// JWTを発行する約束（実装はcmd側）
type SessionIssuer interface {
	Issue(adminID int64, username string, now time.Time) (token string, expiresAt time.Time, err error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

type AuthUsecase struct {
	adminRepo repo.AdminUserRepository
	verifier  PasswordVerifier
	issuer    SessionIssuer
}

func NewAuthUsecase(adminRepo repo.AdminUserRepository, verifier PasswordVerifier, issuer SessionIssuer) *AuthUsecase {
	return &AuthUsecase{adminRepo: adminRepo, verifier: verifier, issuer: issuer}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token     string          `json:"-"`
	ExpiresAt time.Time       `json:"-"`
	Admin     model.AdminUser `json:"admin"`
}

// Login は認証してセッショントークンを返す。
// ユーザー不在もパスワード不一致も同じ401にする。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "username and password required")
	}

	admin, err := u.adminRepo.FindByUsername(ctx, username)
	if err == repo.ErrNotFound {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !u.verifier.Verify(in.Password, admin.PasswordHash) {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, expiresAt, err := u.issuer.Issue(admin.ID, admin.Username, time.Now())
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return LoginOutput{Token: token, ExpiresAt: expiresAt, Admin: admin}, nil
}
