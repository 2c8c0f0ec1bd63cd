package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/application/usecase"
	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/pkg/logger"
)

// memCompanyRepo implementación en memoria del puerto de empresas.
type memCompanyRepo struct {
	byID     map[string]*entity.Company
	usedBy   map[string]int // id -> usuarios que la referencian (FK RESTRICT)
	failNext error
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{byID: map[string]*entity.Company{}, usedBy: map[string]int{}}
}

func (r *memCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	if r.failNext != nil {
		return r.failNext
	}
	for _, other := range r.byID {
		if strings.EqualFold(other.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if r.failNext != nil {
		return nil, r.failNext
	}
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCompanyRepo) GetByName(_ context.Context, name string) (*entity.Company, error) {
	for _, c := range r.byID {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	_ = limit
	_ = offset
	return out, nil
}

func (r *memCompanyRepo) SetActive(_ context.Context, id string, active bool) error {
	c, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.IsActive = active
	return nil
}

func (r *memCompanyRepo) Delete(_ context.Context, id string) error {
	if r.usedBy[id] > 0 {
		return domain.ErrConflict
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func testLog() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func validCreateReq() dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		Name:    "Comercial Andina SAC",
		RUC:     "20123456789",
		Address: "Av. Principal 123, Lima",
		Phone:   "(01) 987-6543",
		Email:   "contacto@andina.pe",
	}
}

func TestCompanyCreate_Exitoso(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo, testLog())

	res := uc.Create(context.Background(), validCreateReq())
	require.True(t, res.Success, res.Message)

	assert.NotEmpty(t, res.Data.ID)
	assert.True(t, res.Data.IsActive, "toda empresa nueva arranca activa")
	assert.Equal(t, "019876543", res.Data.Phone, "el teléfono se guarda normalizado")
	assert.False(t, res.Data.CreatedAt.IsZero())
	assert.Equal(t, res.Data.CreatedAt, res.Data.UpdatedAt)
}

func TestCompanyCreate_ValidacionAgregada(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newMemCompanyRepo(), testLog())

	res := uc.Create(context.Background(), dto.CreateCompanyRequest{Name: "ab", Address: "x", RUC: "1"})
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrInvalidInput)
	assert.Contains(t, res.Message, "; ", "todas las violaciones en un solo mensaje")
}

func TestCompanyCreate_NombreDuplicado(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo, testLog())

	require.True(t, uc.Create(context.Background(), validCreateReq()).Success)

	res := uc.Create(context.Background(), validCreateReq())
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrDuplicate)
}

func TestCompanyGetByID_NoEncontrada(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newMemCompanyRepo(), testLog())

	res := uc.GetByID(context.Background(), "no-existe")
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrNotFound)
}

func TestCompanyUpdate_ConservaCreatedAt(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo, testLog())

	created := uc.Create(context.Background(), validCreateReq())
	require.True(t, created.Success)
	id := created.Data.ID

	time.Sleep(5 * time.Millisecond)

	nuevo := "Comercial Andina del Sur SAC"
	res := uc.Update(context.Background(), id, dto.UpdateCompanyRequest{Name: &nuevo})
	require.True(t, res.Success, res.Message)

	assert.Equal(t, nuevo, res.Data.Name)
	assert.Equal(t, created.Data.CreatedAt, res.Data.CreatedAt, "CreatedAt es inmutable")
	assert.True(t, res.Data.UpdatedAt.After(created.Data.UpdatedAt))
	// Los campos no enviados quedan intactos.
	assert.Equal(t, created.Data.RUC, res.Data.RUC)
	assert.Equal(t, created.Data.Address, res.Data.Address)
}

func TestCompanyUpdate_NombreTomado(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo, testLog())

	a := uc.Create(context.Background(), validCreateReq())
	require.True(t, a.Success)

	otra := validCreateReq()
	otra.Name = "Distribuidora Norte SAC"
	b := uc.Create(context.Background(), otra)
	require.True(t, b.Success)

	tomado := a.Data.Name
	res := uc.Update(context.Background(), b.Data.ID, dto.UpdateCompanyRequest{Name: &tomado})
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrDuplicate)
}

func TestCompanyDeactivateReactivate(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo, testLog())

	created := uc.Create(context.Background(), validCreateReq())
	require.True(t, created.Success)
	id := created.Data.ID

	res := uc.Deactivate(context.Background(), id)
	require.True(t, res.Success)
	assert.False(t, res.Data.IsActive)
	assert.False(t, repo.byID[id].IsActive, "borrado lógico, la fila sigue existiendo")

	res = uc.Reactivate(context.Background(), id)
	require.True(t, res.Success)
	assert.True(t, res.Data.IsActive)
}

func TestCompanyDelete_ConUsuariosAsociados(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo, testLog())

	created := uc.Create(context.Background(), validCreateReq())
	require.True(t, created.Success)
	repo.usedBy[created.Data.ID] = 1

	res := uc.Delete(context.Background(), created.Data.ID)
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrConflict)
	assert.Contains(t, repo.byID, created.Data.ID, "la empresa no se elimina")
}

func TestCompanyCreate_ErrorDeRepositorio(t *testing.T) {
	repo := newMemCompanyRepo()
	repo.failNext = assert.AnError
	uc := usecase.NewCompanyUseCase(repo, testLog())

	res := uc.Create(context.Background(), validCreateReq())
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrStoreUnavailable)
	assert.Equal(t, "error interno", res.Message)
}
