package service

import (
	"context"
	"testing"
	"time"

	"github.com/Lum1n0sity/scholarthynk-api/internal/config"
	"github.com/Lum1n0sity/scholarthynk-api/internal/dto"
	"github.com/Lum1n0sity/scholarthynk-api/internal/entity"
	"github.com/Lum1n0sity/scholarthynk-api/internal/repository/specification"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	users  map[uuid.UUID]*entity.User
	tokens map[uuid.UUID]*entity.PasswordResetToken
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		users:  make(map[uuid.UUID]*entity.User),
		tokens: make(map[uuid.UUID]*entity.PasswordResetToken),
	}
}

func (r *memUserRepo) matches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		}
	}
	return true
}

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	c := *u
	r.users[u.Id] = &c
	return nil
}

func (r *memUserRepo) Update(ctx context.Context, u *entity.User) error {
	c := *u
	r.users[u.Id] = &c
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		if r.matches(u, specs) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, u := range r.users {
		if r.matches(u, specs) {
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	c := *token
	r.tokens[token.Id] = &c
	return nil
}

func (r *memUserRepo) FindPasswordResetToken(ctx context.Context, specs ...specification.Specification) (*entity.PasswordResetToken, error) {
	for _, t := range r.tokens {
		matched := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByToken); ok && t.Token != s.Token {
				matched = false
			}
		}
		if matched {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) DeletePasswordResetToken(ctx context.Context, id uuid.UUID) error {
	delete(r.tokens, id)
	return nil
}

func (r *memUserRepo) DeletePasswordResetTokensByUserId(ctx context.Context, userId uuid.UUID) error {
	for id, t := range r.tokens {
		if t.UserId == userId {
			delete(r.tokens, id)
		}
	}
	return nil
}

type recordingMailer struct {
	sent chan string
}

func (m *recordingMailer) SendResetToken(toEmail, token string) error {
	m.sent <- token
	return nil
}

func newAuthTestService() (IAuthService, *memUserRepo, *recordingMailer) {
	repo := newMemUserRepo()
	mail := &recordingMailer{sent: make(chan string, 1)}
	factory := &memFactory{uow: &memUnitOfWork{userRepo: repo}}
	cfg := &config.AuthConfig{JwtSecret: "test-secret", TokenTTLHours: 1}
	return NewAuthService(factory, mail, nil, cfg), repo, mail
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo, _ := newAuthTestService()
	ctx := context.Background()

	res, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "alex@example.com",
		FullName: "Alex",
		Password: "correct horse",
	})
	require.NoError(t, err)

	stored := repo.users[res.Id]
	require.NotNil(t, stored)
	assert.Equal(t, entity.UserRoleUser, stored.Role)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "alex@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	token, err := jwt.Parse(login.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, res.Id.String(), claims["user_id"])
	assert.Equal(t, "user", claims["role"])
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthTestService()
	ctx := context.Background()

	req := &dto.RegisterRequest{Email: "alex@example.com", FullName: "Alex", Password: "correct horse"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assertStatus(t, err, 409)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newAuthTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "alex@example.com",
		FullName: "Alex",
		Password: "correct horse",
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"unknown email", dto.LoginRequest{Email: "nobody@example.com", Password: "correct horse"}},
		{"wrong password", dto.LoginRequest{Email: "alex@example.com", Password: "wrong"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &tt.req)
			assertStatus(t, err, 401)
		})
	}
}

func TestForgotPasswordIsSilentForUnknownEmail(t *testing.T) {
	svc, repo, mail := newAuthTestService()

	err := svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.Empty(t, repo.tokens)
	assert.Empty(t, mail.sent)
}

func TestResetPasswordFlow(t *testing.T) {
	svc, _, mail := newAuthTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "alex@example.com",
		FullName: "Alex",
		Password: "old password",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "alex@example.com"}))

	var tokenStr string
	select {
	case tokenStr = <-mail.sent:
	case <-time.After(time.Second):
		t.Fatal("reset mail was never sent")
	}

	require.NoError(t, svc.ResetPassword(ctx, &dto.ResetPasswordRequest{
		Token:       tokenStr,
		NewPassword: "new password",
	}))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "alex@example.com", Password: "old password"})
	assertStatus(t, err, 401)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "alex@example.com", Password: "new password"})
	require.NoError(t, err)

	// The token is single use.
	err = svc.ResetPassword(ctx, &dto.ResetPasswordRequest{Token: tokenStr, NewPassword: "another"})
	assertStatus(t, err, 400)
}
