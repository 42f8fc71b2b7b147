package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/portusapp/portus-console/internal/application/dto"
	"github.com/portusapp/portus-console/internal/domain"
	"github.com/portusapp/portus-console/internal/domain/entity"
	"github.com/portusapp/portus-console/internal/domain/inspection"
	"github.com/portusapp/portus-console/internal/domain/repository"
	"github.com/portusapp/portus-console/pkg/logger"
)

// Fechas sustitutas para ordenar por ЭСП: sin fecha va al final en
// ascendente y también al final en descendente.
var (
	espFallbackAsc  = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
	espFallbackDesc = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
)

// ChassiUseCase gestiona la pantalla de tráileres: carga de instantánea,
// consulta local (búsqueda, filtro y orden) y mutaciones con recarga.
type ChassiUseCase struct {
	repo     repository.ChassiRepository
	log      *logger.Logger
	now      func() time.Time
	collator *collate.Collator

	mu    sync.RWMutex
	items []entity.Chassi
}

func NewChassiUseCase(repo repository.ChassiRepository, log *logger.Logger) *ChassiUseCase {
	return &ChassiUseCase{
		repo:     repo,
		log:      log,
		now:      time.Now,
		collator: collate.New(language.Und),
	}
}

// Load trae la lista completa del upstream y reemplaza la instantánea.
// Si el upstream falla, la instantánea queda vacía: la pantalla muestra
// el banner de error, nunca datos rancios.
func (uc *ChassiUseCase) Load(ctx context.Context) (*dto.ChassiListResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		uc.setItems(nil)
		uc.log.Error().Err(err).Msg("no se pudo cargar la lista de tráileres")
		return nil, err
	}
	uc.setItems(items)
	return uc.Query(dto.ChassiQuery{}), nil
}

// Query evalúa búsqueda, filtro de estado y orden sobre la instantánea
// en memoria. No toca el upstream.
func (uc *ChassiUseCase) Query(q dto.ChassiQuery) *dto.ChassiListResponse {
	today := uc.now()
	search := strings.ToLower(strings.TrimSpace(q.Search))

	uc.mu.RLock()
	items := make([]entity.Chassi, len(uc.items))
	copy(items, uc.items)
	uc.mu.RUnlock()

	rows := make([]dto.ChassiRow, 0, len(items))
	for _, c := range items {
		status := inspection.ChassiStatus(c.Esp, today)
		if search != "" && !strings.Contains(strings.ToLower(c.Nummer), search) {
			continue
		}
		if q.Status != "" && q.Status != inspection.FilterAll && q.Status != status {
			continue
		}
		rows = append(rows, dto.ChassiRow{
			ID:         c.ID,
			Nummer:     c.Nummer,
			Tuf:        c.Tuf,
			TufDisplay: inspection.FormatDisplay(c.Tuf),
			TufBadge:   inspection.DueBadge(c.Tuf, "TÜF", today),
			Esp:        c.Esp,
			EspDisplay: inspection.FormatDisplay(c.Esp),
			EspBadge:   inspection.DueBadge(c.Esp, "SP", today),
			Status:     status,
		})
	}
	uc.sortRows(rows, q.Sort)
	return &dto.ChassiListResponse{Items: rows, Total: len(rows)}
}

func (uc *ChassiUseCase) sortRows(rows []dto.ChassiRow, key string) {
	switch key {
	case "esp_asc":
		sort.SliceStable(rows, func(i, j int) bool {
			return espSortValue(rows[i].Esp, espFallbackAsc).Before(espSortValue(rows[j].Esp, espFallbackAsc))
		})
	case "esp_desc":
		sort.SliceStable(rows, func(i, j int) bool {
			return espSortValue(rows[j].Esp, espFallbackDesc).Before(espSortValue(rows[i].Esp, espFallbackDesc))
		})
	case "number_asc":
		sort.SliceStable(rows, func(i, j int) bool {
			return uc.collator.CompareString(rows[i].Nummer, rows[j].Nummer) < 0
		})
	case "number_desc":
		sort.SliceStable(rows, func(i, j int) bool {
			return uc.collator.CompareString(rows[j].Nummer, rows[i].Nummer) < 0
		})
	}
	// clave desconocida: se conserva el orden del upstream
}

func espSortValue(date string, fallback time.Time) time.Time {
	if t, ok := inspection.ParseDate(date); ok {
		return t
	}
	return fallback
}

// Save valida, normaliza y crea o actualiza según venga id. Tras una
// mutación exitosa recarga la lista completa antes de responder, de modo
// que el diálogo se cierra ya con el estado post-mutación visible.
func (uc *ChassiUseCase) Save(ctx context.Context, id int, in dto.SaveChassiRequest) (*dto.ChassiListResponse, error) {
	in.Normalize()
	if verr := in.Validate(); verr != nil {
		return nil, verr
	}
	payload := repository.ChassiWrite{
		Nummer: in.Nummer,
		Tuf:    nullable(in.Tuf),
		Esp:    nullable(in.Esp),
		Status: nullable(in.Status),
	}
	var err error
	if id > 0 {
		payload.ID = id
		payload.IDAlt = id
		err = uc.repo.Update(ctx, payload)
	} else {
		err = uc.repo.Create(ctx, payload)
	}
	if err != nil {
		return nil, err
	}
	return uc.Load(ctx)
}

// Delete elimina un tráiler y recarga. Si el upstream rechaza el borrado
// la lista visible no cambia. La respuesta lleva el número del tráiler
// borrado para el texto de confirmación.
func (uc *ChassiUseCase) Delete(ctx context.Context, id int) (*dto.ChassiListResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	nummer := uc.nummerOf(id)
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	out, err := uc.Load(ctx)
	if err != nil {
		return nil, err
	}
	out.Deleted = nummer
	return out, nil
}

// nummerOf busca el número en la instantánea actual; vacío si no está.
func (uc *ChassiUseCase) nummerOf(id int) string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, c := range uc.items {
		if c.ID == id {
			return c.Nummer
		}
	}
	return ""
}

func (uc *ChassiUseCase) setItems(items []entity.Chassi) {
	uc.mu.Lock()
	uc.items = items
	uc.mu.Unlock()
}

// nullable mapea cadena vacía a ausencia del campo en el JSON de salida.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
