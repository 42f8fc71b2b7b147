package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portusapp/portus-console/internal/application/dto"
	"github.com/portusapp/portus-console/internal/domain/entity"
	"github.com/portusapp/portus-console/internal/domain/inspection"
	"github.com/portusapp/portus-console/internal/domain/repository"
	"github.com/portusapp/portus-console/pkg/logger"
)

type fakeLkwRepo struct {
	items []entity.Lkw

	createCalls int
	updateCalls int
	lastWrite   repository.LkwWrite
}

func (f *fakeLkwRepo) List(context.Context) ([]entity.Lkw, error) { return f.items, nil }

func (f *fakeLkwRepo) Create(_ context.Context, in repository.LkwWrite) error {
	f.createCalls++
	f.lastWrite = in
	return nil
}

func (f *fakeLkwRepo) Update(_ context.Context, in repository.LkwWrite) error {
	f.updateCalls++
	f.lastWrite = in
	return nil
}

func (f *fakeLkwRepo) Delete(context.Context, int) error { return nil }

func newTestLkwUC(repo *fakeLkwRepo) *LkwUseCase {
	uc := NewLkwUseCase(repo, logger.Nop())
	uc.now = func() time.Time { return testToday }
	return uc
}

func testLkws() []entity.Lkw {
	return []entity.Lkw{
		{ID: 1, Nummer: "L-100", Modell: "Actros", Baujahr: 2019, Tuf: "2024-07-01", Esp: "2025-01-10", Status: "Gut"},
		{ID: 2, Nummer: "L-200", Modell: "TGX", Baujahr: 2015, Tuf: "2024-06-01", Esp: "2024-05-01", Status: "Beschädigt"},
		{ID: 3, Nummer: "L-300", Modell: "Volvo FH", Baujahr: 2022, Tuf: "", Esp: "2024-06-18", Status: ""},
	}
}

func TestLkwQuery_BusquedaCubreNumeroYModelo(t *testing.T) {
	repo := &fakeLkwRepo{items: testLkws()}
	uc := newTestLkwUC(repo)
	_, err := uc.Load(context.Background())
	require.NoError(t, err)

	out := uc.Query(dto.LkwQuery{Search: "volvo"})
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "L-300", out.Items[0].Nummer)

	out = uc.Query(dto.LkwQuery{Search: "l-1"})
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Actros", out.Items[0].Modell)
}

func TestLkwQuery_EstadoVacioSeMuestraComoGuion(t *testing.T) {
	repo := &fakeLkwRepo{items: testLkws()}
	uc := newTestLkwUC(repo)
	_, err := uc.Load(context.Background())
	require.NoError(t, err)

	out := uc.Query(dto.LkwQuery{})
	assert.Equal(t, "—", out.Items[2].Status,
		"el listado no recalcula el estado del camión; vacío se pinta como guion")
}

func TestLkwQuery_OrdenPorAnio(t *testing.T) {
	repo := &fakeLkwRepo{items: testLkws()}
	uc := newTestLkwUC(repo)
	_, err := uc.Load(context.Background())
	require.NoError(t, err)

	out := uc.Query(dto.LkwQuery{Sort: "year_asc"})
	assert.Equal(t, 2015, out.Items[0].Baujahr)
	assert.Equal(t, 2022, out.Items[2].Baujahr)

	out = uc.Query(dto.LkwQuery{Sort: "year_desc"})
	assert.Equal(t, 2022, out.Items[0].Baujahr)
}

func TestLkwSave_EstadoVacioSeAutocompleta(t *testing.T) {
	repo := &fakeLkwRepo{items: testLkws()}
	uc := newTestLkwUC(repo)

	// Esp vencida → Beschädigt.
	_, err := uc.Save(context.Background(), 0, dto.SaveLkwRequest{
		Nummer: "L-400", Tuf: "2024-07-01", Esp: "2024-05-01",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastWrite.Status)
	assert.Equal(t, inspection.LkwStatusSchaden, *repo.lastWrite.Status)

	// Esp próxima → Bald Inspektion.
	_, err = uc.Save(context.Background(), 0, dto.SaveLkwRequest{
		Nummer: "L-401", Tuf: "2024-07-01", Esp: "2024-06-20",
	})
	require.NoError(t, err)
	assert.Equal(t, inspection.LkwStatusBaldInsp, *repo.lastWrite.Status)
}

func TestLkwSave_EstadoEscritoAManoSeRespeta(t *testing.T) {
	repo := &fakeLkwRepo{items: testLkws()}
	uc := newTestLkwUC(repo)

	_, err := uc.Save(context.Background(), 1, dto.SaveLkwRequest{
		Nummer: "L-100", Tuf: "2024-07-01", Esp: "2024-05-01", Status: "Gut",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastWrite.Status)
	assert.Equal(t, "Gut", *repo.lastWrite.Status,
		"un estado explícito no se sobreescribe aunque la fecha esté vencida")
	assert.Equal(t, 1, repo.updateCalls)
}

func TestLkwSave_NumeroSinLongitudMinima(t *testing.T) {
	repo := &fakeLkwRepo{}
	uc := newTestLkwUC(repo)

	// Un número de dos caracteres es válido para camiones.
	_, err := uc.Save(context.Background(), 0, dto.SaveLkwRequest{
		Nummer: "L1", Tuf: "2024-07-01", Esp: "2024-08-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
}
