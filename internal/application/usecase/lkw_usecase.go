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

// LkwUseCase gestiona la pantalla de camiones. A diferencia de los
// tráileres no hay filtro por estado, la búsqueda cubre número y modelo,
// y el estado guardado en blanco se autocompleta al guardar.
type LkwUseCase struct {
	repo     repository.LkwRepository
	log      *logger.Logger
	now      func() time.Time
	collator *collate.Collator

	mu    sync.RWMutex
	items []entity.Lkw
}

func NewLkwUseCase(repo repository.LkwRepository, log *logger.Logger) *LkwUseCase {
	return &LkwUseCase{
		repo:     repo,
		log:      log,
		now:      time.Now,
		collator: collate.New(language.Und),
	}
}

func (uc *LkwUseCase) Load(ctx context.Context) (*dto.LkwListResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		uc.setItems(nil)
		uc.log.Error().Err(err).Msg("no se pudo cargar la lista de camiones")
		return nil, err
	}
	uc.setItems(items)
	return uc.Query(dto.LkwQuery{}), nil
}

func (uc *LkwUseCase) Query(q dto.LkwQuery) *dto.LkwListResponse {
	today := uc.now()
	search := strings.ToLower(strings.TrimSpace(q.Search))

	uc.mu.RLock()
	items := make([]entity.Lkw, len(uc.items))
	copy(items, uc.items)
	uc.mu.RUnlock()

	rows := make([]dto.LkwRow, 0, len(items))
	for _, l := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(l.Nummer), search) &&
			!strings.Contains(strings.ToLower(l.Modell), search) {
			continue
		}
		status := strings.TrimSpace(l.Status)
		if status == "" {
			status = "—"
		}
		rows = append(rows, dto.LkwRow{
			ID:         l.ID,
			Nummer:     l.Nummer,
			Modell:     l.Modell,
			Baujahr:    l.Baujahr,
			Tuf:        l.Tuf,
			TufDisplay: inspection.FormatDisplay(l.Tuf),
			TufBadge:   inspection.DueBadge(l.Tuf, "TÜF", today),
			Esp:        l.Esp,
			EspDisplay: inspection.FormatDisplay(l.Esp),
			EspBadge:   inspection.DueBadge(l.Esp, "SP", today),
			Status:     status,
		})
	}
	uc.sortRows(rows, q.Sort)
	return &dto.LkwListResponse{Items: rows, Total: len(rows)}
}

func (uc *LkwUseCase) sortRows(rows []dto.LkwRow, key string) {
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
	case "year_asc":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Baujahr < rows[j].Baujahr })
	case "year_desc":
		sort.SliceStable(rows, func(i, j int) bool { return rows[j].Baujahr < rows[i].Baujahr })
	}
}

// Save autocompleta el estado a partir de la fecha ЭСП cuando el
// formulario lo deja en blanco; un estado escrito a mano se respeta.
func (uc *LkwUseCase) Save(ctx context.Context, id int, in dto.SaveLkwRequest) (*dto.LkwListResponse, error) {
	in.Normalize()
	if verr := in.Validate(); verr != nil {
		return nil, verr
	}
	if in.Status == "" {
		in.Status = inspection.LkwAutoStatus(in.Esp, uc.now())
	}
	payload := repository.LkwWrite{
		Nummer:  in.Nummer,
		Modell:  in.Modell,
		Baujahr: in.Baujahr,
		Tuf:     nullable(in.Tuf),
		Esp:     nullable(in.Esp),
		Status:  nullable(in.Status),
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

func (uc *LkwUseCase) Delete(ctx context.Context, id int) (*dto.LkwListResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return uc.Load(ctx)
}

func (uc *LkwUseCase) setItems(items []entity.Lkw) {
	uc.mu.Lock()
	uc.items = items
	uc.mu.Unlock()
}
