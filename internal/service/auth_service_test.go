package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/classboard/classboard-api/internal/models"
	appErrors "github.com/classboard/classboard-api/pkg/errors"
)

type mockAuthTeacherRepo struct {
	byID    map[int64]*models.Teacher
	byEmail map[string]*models.Teacher
	nextID  int64
}

func (m *mockAuthTeacherRepo) FindByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	if teacher, ok := m.byEmail[strings.ToLower(email)]; ok {
		cp := *teacher
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAuthTeacherRepo) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if teacher, ok := m.byID[id]; ok {
		cp := *teacher
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAuthTeacherRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := m.byEmail[strings.ToLower(email)]
	return ok, nil
}

func (m *mockAuthTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) error {
	if m.byID == nil {
		m.byID = make(map[int64]*models.Teacher)
	}
	if m.byEmail == nil {
		m.byEmail = make(map[string]*models.Teacher)
	}
	m.nextID++
	teacher.ID = m.nextID
	cp := *teacher
	m.byID[teacher.ID] = &cp
	m.byEmail[teacher.Email] = &cp
	return nil
}

type mockTokenRepo struct {
	tokens  map[string]*models.RememberToken
	revoked []string
}

func (m *mockTokenRepo) Create(ctx context.Context, token *models.RememberToken) error {
	if m.tokens == nil {
		m.tokens = make(map[string]*models.RememberToken)
	}
	cp := *token
	m.tokens[token.ID] = &cp
	return nil
}

func (m *mockTokenRepo) FindByID(ctx context.Context, id string) (*models.RememberToken, error) {
	if token, ok := m.tokens[id]; ok {
		cp := *token
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockTokenRepo) Revoke(ctx context.Context, id string, revokedAt time.Time) error {
	if token, ok := m.tokens[id]; ok {
		token.Revoked = true
		token.RevokedAt = &revokedAt
	}
	m.revoked = append(m.revoked, id)
	return nil
}

func (m *mockTokenRepo) RevokeAllForTeacher(ctx context.Context, teacherID int64, revokedAt time.Time) error {
	for _, token := range m.tokens {
		if token.TeacherID == teacherID {
			token.Revoked = true
			token.RevokedAt = &revokedAt
		}
	}
	return nil
}

func newAuthService(teachers *mockAuthTeacherRepo, tokens *mockTokenRepo) *AuthService {
	return NewAuthService(teachers, tokens, validator.New(), zap.NewNop(), AuthConfig{
		TokenSecret: "test-secret",
		Issuer:      "classboard-test",
	})
}

func seedTeacher(t *testing.T, repo *mockAuthTeacherRepo, email, password string) *models.Teacher {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	teacher := &models.Teacher{Name: "Maria", Email: email, PasswordHash: string(hash), Age: 30}
	require.NoError(t, repo.Create(context.Background(), teacher))
	return teacher
}

func TestAuthServiceRegister(t *testing.T) {
	teachers := &mockAuthTeacherRepo{}
	svc := newAuthService(teachers, &mockTokenRepo{})

	teacher, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Maria",
		Email:    "Maria@Example.com",
		Country:  "Spain",
		Age:      30,
		Gender:   "female",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", teacher.Email)
	assert.NotEqual(t, "supersecret", teacher.PasswordHash)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	teachers := &mockAuthTeacherRepo{}
	svc := newAuthService(teachers, &mockTokenRepo{})
	seedTeacher(t, teachers, "maria@example.com", "supersecret")

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Maria",
		Email:    "maria@example.com",
		Age:      30,
		Password: "supersecret",
	})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrConflict.Status, appErr.Status)
}

func TestAuthServiceLogin(t *testing.T) {
	teachers := &mockAuthTeacherRepo{}
	tokens := &mockTokenRepo{}
	svc := newAuthService(teachers, tokens)
	seedTeacher(t, teachers, "maria@example.com", "supersecret")

	session, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "maria@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.Empty(t, session.RememberToken)
	assert.Equal(t, "Maria", session.Teacher.Name)

	claims, err := svc.ValidateToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session.Teacher.ID, claims.TeacherID)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	teachers := &mockAuthTeacherRepo{}
	svc := newAuthService(teachers, &mockTokenRepo{})
	seedTeacher(t, teachers, "maria@example.com", "supersecret")

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "maria@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrInvalidCredentials.Status, appErr.Status)
	assert.Equal(t, "invalid email or password", appErr.Message)
}

func TestAuthServiceRememberTokenRoundTrip(t *testing.T) {
	teachers := &mockAuthTeacherRepo{}
	tokens := &mockTokenRepo{}
	svc := newAuthService(teachers, tokens)
	teacher := seedTeacher(t, teachers, "maria@example.com", "supersecret")

	session, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "maria@example.com",
		Password: "supersecret",
		Remember: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.RememberToken)
	assert.Contains(t, session.RememberToken, ".")

	// The cookie value never matches what is stored server-side.
	id, secret, _ := strings.Cut(session.RememberToken, ".")
	stored := tokens.tokens[id]
	require.NotNil(t, stored)
	assert.NotEqual(t, secret, stored.SecretHash)

	restored, err := svc.Restore(context.Background(), session.RememberToken)
	require.NoError(t, err)
	assert.Equal(t, teacher.ID, restored.Teacher.ID)
	assert.NotEmpty(t, restored.AccessToken)
}

func TestAuthServiceRestoreRejectsTamperedSecret(t *testing.T) {
	teachers := &mockAuthTeacherRepo{}
	tokens := &mockTokenRepo{}
	svc := newAuthService(teachers, tokens)
	seedTeacher(t, teachers, "maria@example.com", "supersecret")

	session, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "maria@example.com",
		Password: "supersecret",
		Remember: true,
	})
	require.NoError(t, err)

	id, _, _ := strings.Cut(session.RememberToken, ".")
	_, err = svc.Restore(context.Background(), id+".forged-secret")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrUnauthorized.Status, appErr.Status)
}

func TestAuthServiceRestoreRejectsRevokedToken(t *testing.T) {
	teachers := &mockAuthTeacherRepo{}
	tokens := &mockTokenRepo{}
	svc := newAuthService(teachers, tokens)
	teacher := seedTeacher(t, teachers, "maria@example.com", "supersecret")

	session, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "maria@example.com",
		Password: "supersecret",
		Remember: true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.RememberToken, teacher.ID))
	require.Len(t, tokens.revoked, 1)

	_, err = svc.Restore(context.Background(), session.RememberToken)
	require.Error(t, err)
}

func TestAuthServiceLogoutForeignTokenForbidden(t *testing.T) {
	teachers := &mockAuthTeacherRepo{}
	tokens := &mockTokenRepo{}
	svc := newAuthService(teachers, tokens)
	seedTeacher(t, teachers, "maria@example.com", "supersecret")

	session, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "maria@example.com",
		Password: "supersecret",
		Remember: true,
	})
	require.NoError(t, err)

	err = svc.Logout(context.Background(), session.RememberToken, 999)
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrForbidden.Status, appErr.Status)
	assert.Empty(t, tokens.revoked)
}

func TestAuthServiceValidateTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService(&mockAuthTeacherRepo{}, &mockTokenRepo{})
	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
}
