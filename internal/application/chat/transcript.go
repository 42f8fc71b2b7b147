package chat

import (
	"context"
	"fmt"
	"sync"

	"github.com/portusapp/portus-console/internal/application/dto"
	"github.com/portusapp/portus-console/internal/domain"
	"github.com/portusapp/portus-console/internal/domain/repository"
	"github.com/portusapp/portus-console/pkg/logger"
)

// TranscriptUseCase arma el visor de histórico de un chassi: título con el
// número del remolque, mensajes y adjuntos resueltos mensaje a mensaje.
type TranscriptUseCase struct {
	chassis repository.ChassiRepository
	repo    repository.TranscriptRepository
	log     *logger.Logger
}

func NewTranscriptUseCase(chassis repository.ChassiRepository, repo repository.TranscriptRepository, log *logger.Logger) *TranscriptUseCase {
	return &TranscriptUseCase{chassis: chassis, repo: repo, log: log}
}

// Build construye el transcript completo. El upstream no tiene endpoint de
// detalle, así que el número del remolque sale de recorrer el listado; si
// eso falla el título degrada a "№{id}". Los adjuntos se consultan en
// paralelo y un fallo deja sin adjuntos solo a ese mensaje.
func (uc *TranscriptUseCase) Build(ctx context.Context, chassisID int) (*dto.TranscriptResponse, error) {
	if chassisID <= 0 {
		return nil, domain.ErrInvalidInput
	}

	title := fmt.Sprintf("№%d", chassisID)
	if list, err := uc.chassis.List(ctx); err == nil {
		for _, c := range list {
			if c.ID == chassisID && c.Nummer != "" {
				title = c.Nummer
				break
			}
		}
	} else {
		uc.log.Warn().Err(err).Int("chassis_id", chassisID).Msg("no se pudo resolver el número del remolque")
	}

	msgs, err := uc.repo.Messages(ctx, chassisID)
	if err != nil {
		uc.log.Error().Err(err).Int("chassis_id", chassisID).Msg("no se pudo cargar el transcript")
		msgs = nil
	}

	var wg sync.WaitGroup
	for i := range msgs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			files, err := uc.repo.Files(ctx, msgs[i].ID.Int())
			if err != nil {
				uc.log.Warn().Err(err).Int("message_id", msgs[i].ID.Int()).Msg("adjuntos no disponibles")
				return
			}
			msgs[i].Files = files
		}(i)
	}
	wg.Wait()

	views := make([]dto.TranscriptMessageView, 0, len(msgs))
	for _, m := range msgs {
		files := make([]string, 0, len(m.Files))
		for _, f := range m.Files {
			files = append(files, f.FileName)
		}
		views = append(views, dto.TranscriptMessageView{
			ID:        m.ID.Int(),
			Sender:    m.SenderType,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
			Files:     files,
		})
	}
	return &dto.TranscriptResponse{Title: title, ChassisID: chassisID, Messages: views}, nil
}
