package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portusapp/portus-console/internal/application/dto"
	"github.com/portusapp/portus-console/internal/domain"
	"github.com/portusapp/portus-console/internal/domain/entity"
	"github.com/portusapp/portus-console/internal/domain/repository"
	"github.com/portusapp/portus-console/pkg/logger"
)

type fakeFahrerRepo struct {
	items []entity.Fahrer

	createCalls int
	updateID    int
	lastWrite   repository.FahrerWrite
}

func (f *fakeFahrerRepo) List(context.Context) ([]entity.Fahrer, error) { return f.items, nil }

func (f *fakeFahrerRepo) Create(_ context.Context, in repository.FahrerWrite) error {
	f.createCalls++
	f.lastWrite = in
	return nil
}

func (f *fakeFahrerRepo) Update(_ context.Context, id int, in repository.FahrerWrite) error {
	f.updateID = id
	f.lastWrite = in
	return nil
}

func (f *fakeFahrerRepo) Delete(context.Context, int) error { return domain.ErrNotSupported }

func testFahrers() []entity.Fahrer {
	return []entity.Fahrer{
		{ID: 1, Name: "Iwan", Lastname: "Petrov", Email: "iwan@example.com", Chassi: "AA-100"},
		{ID: 2, Name: "Olga", Lastname: "Sidorova", Email: "olga@example.com", Lkw: "L-200"},
		{ID: 3, Name: "", Lastname: "Incompleto", Email: "resto@example.com"},
		{ID: 4, Name: "SinCorreo", Lastname: "X", Email: ""},
	}
}

func TestFahrerQuery_OmiteFilasIncompletas(t *testing.T) {
	repo := &fakeFahrerRepo{items: testFahrers()}
	uc := NewFahrerUseCase(repo, logger.Nop())
	_, err := uc.Load(context.Background())
	require.NoError(t, err)

	out := uc.Query(dto.FahrerQuery{})
	assert.Equal(t, 2, out.Total,
		"las filas sin nombre o sin email no llegan a la vista")
}

func TestFahrerQuery_BusquedaPorNombreOEmail(t *testing.T) {
	repo := &fakeFahrerRepo{items: testFahrers()}
	uc := NewFahrerUseCase(repo, logger.Nop())
	_, err := uc.Load(context.Background())
	require.NoError(t, err)

	out := uc.Query(dto.FahrerQuery{Search: "olga"})
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Olga", out.Items[0].Name)

	out = uc.Query(dto.FahrerQuery{Search: "iwan@"})
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Iwan", out.Items[0].Name)
}

func TestFahrerSave_Validacion(t *testing.T) {
	repo := &fakeFahrerRepo{}
	uc := NewFahrerUseCase(repo, logger.Nop())

	_, err := uc.Save(context.Background(), 0, dto.SaveFahrerRequest{Name: "Iwan"})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "lastname")
	assert.Contains(t, verr.Fields, "email")
	assert.Zero(t, repo.createCalls)
}

func TestFahrerSave_EdicionUsaIDDeRuta(t *testing.T) {
	repo := &fakeFahrerRepo{items: testFahrers()}
	uc := NewFahrerUseCase(repo, logger.Nop())

	_, err := uc.Save(context.Background(), 2, dto.SaveFahrerRequest{
		Name: "Olga", Lastname: "Sidorova", Email: "olga@example.com", Lkw: "L-300",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.updateID)
	assert.Equal(t, "L-300", repo.lastWrite.Lkw)
}

func TestFahrerDelete_NoSoportado(t *testing.T) {
	uc := NewFahrerUseCase(&fakeFahrerRepo{}, logger.Nop())
	err := uc.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrNotSupported)
}
