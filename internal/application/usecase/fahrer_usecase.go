package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/portusapp/portus-console/internal/application/dto"
	"github.com/portusapp/portus-console/internal/domain"
	"github.com/portusapp/portus-console/internal/domain/entity"
	"github.com/portusapp/portus-console/internal/domain/repository"
	"github.com/portusapp/portus-console/pkg/logger"
)

// FahrerUseCase gestiona la pantalla de conductores. Las filas sin nombre
// o sin email se omiten de la vista; son restos de registros a medias en
// el upstream y no se pueden editar con sentido.
type FahrerUseCase struct {
	repo repository.FahrerRepository
	log  *logger.Logger

	mu    sync.RWMutex
	items []entity.Fahrer
}

func NewFahrerUseCase(repo repository.FahrerRepository, log *logger.Logger) *FahrerUseCase {
	return &FahrerUseCase{repo: repo, log: log}
}

func (uc *FahrerUseCase) Load(ctx context.Context) (*dto.FahrerListResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		uc.setItems(nil)
		uc.log.Error().Err(err).Msg("no se pudo cargar la lista de conductores")
		return nil, err
	}
	uc.setItems(items)
	return uc.Query(dto.FahrerQuery{}), nil
}

// Query busca sobre nombre y email de la instantánea en memoria.
func (uc *FahrerUseCase) Query(q dto.FahrerQuery) *dto.FahrerListResponse {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	uc.mu.RLock()
	items := make([]entity.Fahrer, len(uc.items))
	copy(items, uc.items)
	uc.mu.RUnlock()

	rows := make([]dto.FahrerRow, 0, len(items))
	for _, f := range items {
		if f.Name == "" || f.Email == "" {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(f.Name), search) &&
			!strings.Contains(strings.ToLower(f.Email), search) {
			continue
		}
		rows = append(rows, dto.FahrerRow{
			ID:       f.ID,
			Name:     f.Name,
			Lastname: f.Lastname,
			Email:    f.Email,
			Chassi:   f.Chassi,
			Lkw:      f.Lkw,
			Phone:    f.Phone,
		})
	}
	return &dto.FahrerListResponse{Items: rows, Total: len(rows)}
}

func (uc *FahrerUseCase) Save(ctx context.Context, id int, in dto.SaveFahrerRequest) (*dto.FahrerListResponse, error) {
	in.Normalize()
	if verr := in.Validate(); verr != nil {
		return nil, verr
	}
	payload := repository.FahrerWrite{
		Name:     in.Name,
		Lastname: in.Lastname,
		Email:    in.Email,
		Password: in.Password,
		Chassi:   in.Chassi,
		Lkw:      in.Lkw,
		Phone:    in.Phone,
	}
	var err error
	if id > 0 {
		err = uc.repo.Update(ctx, id, payload)
	} else {
		err = uc.repo.Create(ctx, payload)
	}
	if err != nil {
		return nil, err
	}
	return uc.Load(ctx)
}

// Delete no existe en el upstream; se devuelve tal cual para que la capa
// HTTP responda 501.
func (uc *FahrerUseCase) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *FahrerUseCase) setItems(items []entity.Fahrer) {
	uc.mu.Lock()
	uc.items = items
	uc.mu.Unlock()
}
