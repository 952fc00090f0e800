package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/pkg/jwt"
)

type memUsers struct {
	mu      sync.Mutex
	byID    map[string]*entity.User
	touched []string
}

func newMemUsers() *memUsers { return &memUsers{byID: map[string]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) CreateWithBootstrapRole(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	u.Role = entity.RoleStaff
	if len(m.byID) == 0 {
		u.Role = entity.RoleAdmin
	}
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) TouchLastLogin(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touched = append(m.touched, id)
	return nil
}

func (m *memUsers) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byID)), nil
}

var testJWT = JWTConfig{Secret: "secret-de-pruebas", ExpMinutes: 60, Issuer: "autoparts-test"}

func TestRegister_PrimerUsuarioEsAdminElRestoStaff(t *testing.T) {
	users := newMemUsers()
	uc := NewAuthUseCase(users, testJWT)
	ctx := context.Background()

	first, err := uc.Register(ctx, dto.RegisterRequest{Email: " Owner@Example.com ", Password: "supersecreto", Name: "Owner"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, first.Role)
	assert.Equal(t, "owner@example.com", first.Email)

	second, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "supersecreto", Name: "Ana", Location: "dubai"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, second.Role)
	assert.Equal(t, "dubai", second.Location)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "ANA@example.com", Password: "supersecreto", Name: "Otra"})
	assert.True(t, errors.Is(err, domain.ErrEmailAlreadyExists))

	stored := users.byID[second.ID]
	assert.NotEqual(t, "supersecreto", stored.PasswordHash, "nunca se guarda el password plano")
}

func TestRegister_AltasConcurrentesSoloUnAdmin(t *testing.T) {
	users := newMemUsers()
	uc := NewAuthUseCase(users, testJWT)

	const n = 8
	roles := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := uc.Register(context.Background(), dto.RegisterRequest{
				Email: fmt.Sprintf("user%d@example.com", i), Password: "supersecreto", Name: "U",
			})
			if err == nil {
				roles[i] = u.Role
			}
		}(i)
	}
	wg.Wait()

	admins := 0
	for _, r := range roles {
		require.NotEmpty(t, r)
		if r == entity.RoleAdmin {
			admins++
		}
	}
	assert.Equal(t, 1, admins, "solo la primera alta queda como admin")
	n64, _ := users.Count(context.Background())
	assert.Equal(t, int64(n), n64)
}

func TestLogin_TokenConIdentidadYRol(t *testing.T) {
	users := newMemUsers()
	uc := NewAuthUseCase(users, testJWT)
	ctx := context.Background()
	u, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "supersecreto", Name: "Ana", Location: "japan"})
	require.NoError(t, err)

	res, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "supersecreto"})
	require.NoError(t, err)
	claims, err := jwt.Parse(testJWT.Secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, "japan", claims.Location)
	assert.NotNil(t, res.User.LastLogin)
	assert.Equal(t, []string{u.ID}, users.touched)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "incorrecto"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "supersecreto"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_CuentaInactiva(t *testing.T) {
	users := newMemUsers()
	uc := NewAuthUseCase(users, testJWT)
	ctx := context.Background()
	u, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "supersecreto", Name: "Ana"})
	require.NoError(t, err)
	users.byID[u.ID].IsActive = false

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "supersecreto"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	assert.Empty(t, users.touched)
}

func TestPerfilYCambioDePassword(t *testing.T) {
	users := newMemUsers()
	uc := NewAuthUseCase(users, testJWT)
	ctx := context.Background()
	ana, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "supersecreto", Name: "Ana"})
	require.NoError(t, err)
	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "luis@example.com", Password: "supersecreto", Name: "Luis"})
	require.NoError(t, err)

	_, err = uc.UpdateProfile(ctx, ana.ID, dto.UpdateProfileRequest{Name: "Ana", Email: "luis@example.com"})
	assert.True(t, errors.Is(err, domain.ErrEmailAlreadyExists))

	p, err := uc.UpdateProfile(ctx, ana.ID, dto.UpdateProfileRequest{Name: "Ana María", Email: "ana.maria@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", p.Name)

	err = uc.ChangePassword(ctx, ana.ID, dto.ChangePasswordRequest{CurrentPassword: "otra-cosa", NewPassword: "nuevo-secreto"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	require.NoError(t, uc.ChangePassword(ctx, ana.ID, dto.ChangePasswordRequest{CurrentPassword: "supersecreto", NewPassword: "nuevo-secreto"}))
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana.maria@example.com", Password: "nuevo-secreto"})
	assert.NoError(t, err)

	_, err = uc.Me(ctx, "desconocido")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}
