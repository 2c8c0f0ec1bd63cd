package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/auth-service/internal/application/auth"
	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/infrastructure/security"
	"github.com/jhoicas/auth-service/pkg/jwt"
	"github.com/jhoicas/auth-service/pkg/logger"
)

// fakeStore almacenamiento en memoria que implementa los puertos del
// onboarding. El mutex hace que Create sea atómico, igual que el índice único
// de la tabla de usuarios.
type fakeStore struct {
	mu           sync.Mutex
	companies    map[string]*entity.Company
	roles        map[string]*entity.Role
	usersByEmail map[string]*entity.User

	// staleEmailRead simula una lectura desfasada: GetByEmail no ve al usuario
	// ya insertado, y es Create quien rechaza el duplicado.
	staleEmailRead bool
	companyErr     error
	createErr      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		companies:    map[string]*entity.Company{},
		roles:        map[string]*entity.Role{},
		usersByEmail: map[string]*entity.User{},
	}
}

func (s *fakeStore) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if s.companyErr != nil {
		return nil, s.companyErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.companies[id], nil
}

func (s *fakeStore) GetByName(_ context.Context, name string) (*entity.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roles[name], nil
}

func (s *fakeStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if s.staleEmailRead {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usersByEmail[email], nil
}

func (s *fakeStore) Create(_ context.Context, user *entity.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.usersByEmail[user.Email]; dup {
		return domain.ErrEmailAlreadyExists
	}
	s.usersByEmail[user.Email] = user
	return nil
}

// fakeTx pasa el mismo store como los tres puertos. Serializa las ejecuciones
// y restaura el estado previo cuando fn falla, imitando el aislamiento y el
// Rollback de la transacción real.
type fakeTx struct {
	mu    sync.Mutex
	store *fakeStore
}

func (t *fakeTx) Run(_ context.Context, fn func(auth.CompanyFinder, auth.RoleFinder, auth.UserStore) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.store.mu.Lock()
	before := make(map[string]*entity.User, len(t.store.usersByEmail))
	for k, v := range t.store.usersByEmail {
		before[k] = v
	}
	t.store.mu.Unlock()

	if err := fn(t.store, t.store, t.store); err != nil {
		t.store.mu.Lock()
		t.store.usersByEmail = before
		t.store.mu.Unlock()
		return err
	}
	return nil
}

var testJWT = jwt.Config{
	Secret:   "clave-de-prueba-suficientemente-larga-32",
	Issuer:   "auth-service-test",
	Audience: "auth-clients-test",
}

// Parámetros reducidos para que los tests no paguen 64 MiB por hash.
var testHasher = security.NewArgon2Hasher(security.Argon2Params{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
})

func quietLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

const (
	companyID = "4f9d2a10-0000-4000-8000-000000000001"
	roleID    = "4f9d2a10-0000-4000-8000-0000000000aa"
)

func seededStore() *fakeStore {
	s := newFakeStore()
	s.companies[companyID] = &entity.Company{ID: companyID, Name: "Comercial Andina SAC", IsActive: true}
	s.roles[entity.RoleAdminCompany] = &entity.Role{ID: roleID, Name: entity.RoleAdminCompany}
	return s
}

func validRequest() dto.RegisterAdminRequest {
	return dto.RegisterAdminRequest{
		CompanyID: companyID,
		FirstName: "María",
		LastName:  "Quispe",
		Email:     "maria@andina.pe",
		Password:  "secreto-muy-largo",
		Phone:     "(01) 987-654-321",
	}
}

func newUseCase(s *fakeStore) *auth.AuthUseCase {
	return auth.NewAuthUseCase(&fakeTx{store: s}, testHasher, testJWT, quietLogger())
}

func TestRegisterCompanyAdmin_Exitoso(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	res := uc.RegisterCompanyAdmin(context.Background(), validRequest())
	require.True(t, res.Success, res.Message)
	require.NoError(t, res.Err())

	u := res.Data.User
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, roleID, u.RoleID, "debe asignarse el rol reservado")
	assert.Equal(t, companyID, u.CompanyID)
	assert.True(t, u.IsActive)
	assert.Equal(t, "01987654321", u.Phone, "el teléfono se persiste normalizado")

	// La contraseña quedó hasheada, no en claro.
	stored := store.usersByEmail["maria@andina.pe"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto-muy-largo", stored.PasswordHash)
	assert.True(t, testHasher.Verify("secreto-muy-largo", stored.PasswordHash))

	// El token emitido es verificable y lleva la empresa y el rol.
	claims, err := jwt.Parse(testJWT, res.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)
	assert.Equal(t, "maria@andina.pe", claims.Email)
	assert.Equal(t, companyID, claims.CompanyID)
	assert.Equal(t, entity.RoleAdminCompany, claims.Role)
}

func TestRegisterCompanyAdmin_EmpresaInexistente(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	in := validRequest()
	in.CompanyID = "4f9d2a10-0000-4000-8000-00000000dead"

	res := uc.RegisterCompanyAdmin(context.Background(), in)
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrCompanyNotFound)
	assert.Empty(t, store.usersByEmail, "no debe quedar usuario creado")
}

func TestRegisterCompanyAdmin_CorreoDuplicado(t *testing.T) {
	store := seededStore()
	store.usersByEmail["maria@andina.pe"] = &entity.User{ID: "otro", Email: "maria@andina.pe"}
	uc := newUseCase(store)

	res := uc.RegisterCompanyAdmin(context.Background(), validRequest())
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrEmailAlreadyExists)
}

func TestRegisterCompanyAdmin_RolNoConfigurado(t *testing.T) {
	store := seededStore()
	delete(store.roles, entity.RoleAdminCompany)
	uc := newUseCase(store)

	res := uc.RegisterCompanyAdmin(context.Background(), validRequest())
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrRoleNotConfigured)
	assert.Empty(t, store.usersByEmail)
}

func TestRegisterCompanyAdmin_EntradaInvalida(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	in := validRequest()
	in.Email = "sin-arroba"
	in.Password = "corta"

	res := uc.RegisterCompanyAdmin(context.Background(), in)
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrInvalidInput)
	// El mensaje agrega todas las violaciones.
	assert.Contains(t, res.Message, "correo")
	assert.Contains(t, res.Message, "contraseña")
	assert.Empty(t, store.usersByEmail, "la validación corre antes de tocar el almacenamiento")
}

func TestRegisterCompanyAdmin_ErrorDeAlmacenamiento(t *testing.T) {
	store := seededStore()
	store.companyErr = assert.AnError
	uc := newUseCase(store)

	res := uc.RegisterCompanyAdmin(context.Background(), validRequest())
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrStoreUnavailable)
	assert.Equal(t, "error interno", res.Message, "los detalles de infraestructura no se exponen")
}

// El perdedor de una carrera por el mismo correo: la verificación previa no ve
// al otro usuario, pero el insert lo rechaza. Debe reportarse como el mismo
// fallo de negocio, no como error interno.
func TestRegisterCompanyAdmin_InsertPerdedorDeCarrera(t *testing.T) {
	store := seededStore()
	store.usersByEmail["maria@andina.pe"] = &entity.User{ID: "ganador", Email: "maria@andina.pe"}
	store.staleEmailRead = true
	uc := newUseCase(store)

	res := uc.RegisterCompanyAdmin(context.Background(), validRequest())
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrEmailAlreadyExists)
	assert.Equal(t, "ganador", store.usersByEmail["maria@andina.pe"].ID, "el usuario existente no se pisa")
}

// Si la emisión del token falla, la transacción revierte el insert: nunca
// queda un usuario persistido en una operación que reportó fallo.
func TestRegisterCompanyAdmin_FalloDeTokenRevierte(t *testing.T) {
	store := seededStore()
	sinClave := jwt.Config{Issuer: testJWT.Issuer, Audience: testJWT.Audience}
	uc := auth.NewAuthUseCase(&fakeTx{store: store}, testHasher, sinClave, quietLogger())

	res := uc.RegisterCompanyAdmin(context.Background(), validRequest())
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrStoreUnavailable)
	assert.Empty(t, store.usersByEmail, "el insert no debe sobrevivir al fallo de emisión")
}

func TestRegisterCompanyAdmin_ConcurrenciaMismoCorreo(t *testing.T) {
	store := seededStore()
	uc := newUseCase(store)

	var wg sync.WaitGroup
	results := make([]bool, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res := uc.RegisterCompanyAdmin(context.Background(), validRequest())
			results[i] = res.Success
			if !res.Success {
				assert.ErrorIs(t, res.Err(), domain.ErrEmailAlreadyExists)
			}
		}(i)
	}
	wg.Wait()

	exitos := 0
	for _, ok := range results {
		if ok {
			exitos++
		}
	}
	assert.Equal(t, 1, exitos, "exactamente un registro debe ganar")
	assert.Len(t, store.usersByEmail, 1)
}
