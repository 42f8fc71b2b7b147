// Package chat implementa las dos vistas de mensajería de la consola: el
// diálogo en vivo por chassi (pull por cadencia con cursor incremental) y
// el transcript de solo lectura.
package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/portusapp/portus-console/internal/application/dto"
	"github.com/portusapp/portus-console/internal/domain"
	"github.com/portusapp/portus-console/internal/domain/entity"
	"github.com/portusapp/portus-console/internal/domain/repository"
	"github.com/portusapp/portus-console/pkg/logger"
)

// fullFetchLimit es el tope de mensajes del fetch inicial del diálogo.
const fullFetchLimit = 200

// Manager mantiene los diálogos en vivo abiertos, uno por visor. Cada
// diálogo tiene su propio goroutine de pull que muere al cerrarlo.
type Manager struct {
	repo     repository.MessageRepository
	log      *logger.Logger
	interval time.Duration

	mu      sync.Mutex
	dialogs map[string]*Dialog
}

func NewManager(repo repository.MessageRepository, interval time.Duration, log *logger.Logger) *Manager {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Manager{
		repo:     repo,
		log:      log,
		interval: interval,
		dialogs:  make(map[string]*Dialog),
	}
}

// Open crea un diálogo para el chassi: estado limpio, fetch completo
// inicial y pull incremental en segundo plano. Un fallo del fetch inicial
// no impide abrir; el siguiente tick lo reintenta desde cero.
func (m *Manager) Open(ctx context.Context, chassisID int, adminID string) (*Dialog, error) {
	if chassisID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	d := &Dialog{
		ID:        uuid.New().String(),
		ChassisID: chassisID,
		adminID:   adminID,
		repo:      m.repo,
		log:       m.log,
	}
	if err := d.fetch(ctx, true); err != nil {
		m.log.Warn().Err(err).Int("chassis_id", chassisID).Msg("fetch inicial del diálogo falló")
	}

	pollCtx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	go d.poll(pollCtx, m.interval)

	m.mu.Lock()
	m.dialogs[d.ID] = d
	m.mu.Unlock()

	m.log.Debug().Str("dialog_id", d.ID).Int("chassis_id", chassisID).Msg("diálogo abierto")
	return d, nil
}

// Get localiza un diálogo abierto por su id.
func (m *Manager) Get(id string) (*Dialog, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.dialogs[id]
	return d, ok
}

// Close detiene el pull del diálogo y lo olvida. Cerrar dos veces es inocuo.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	d, ok := m.dialogs[id]
	if ok {
		delete(m.dialogs, id)
	}
	m.mu.Unlock()
	if ok {
		d.cancel()
		m.log.Debug().Str("dialog_id", id).Msg("diálogo cerrado")
	}
}

// CloseAll cierra todos los diálogos abiertos (apagado del servidor).
func (m *Manager) CloseAll() {
	m.mu.Lock()
	for id, d := range m.dialogs {
		d.cancel()
		delete(m.dialogs, id)
	}
	m.mu.Unlock()
}

// Dialog es el estado en memoria de un visor de chat abierto sobre un
// chassi: los mensajes acumulados y el cursor del último recibido.
type Dialog struct {
	ID        string
	ChassisID int

	adminID string
	repo    repository.MessageRepository
	log     *logger.Logger
	cancel  context.CancelFunc

	mu    sync.Mutex
	items []entity.ChatMessage
	since string
}

func (d *Dialog) poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.fetch(ctx, false); err != nil {
				d.log.Warn().Err(err).Str("dialog_id", d.ID).Msg("pull del diálogo falló")
			}
		}
	}
}

// fetch trae mensajes y actualiza el estado. El modo inicial reemplaza
// todo; el incremental añade solo lo posterior al cursor. El cursor queda
// en el created_at del último mensaje conocido, sin interpretar.
func (d *Dialog) fetch(ctx context.Context, initial bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	q := repository.MessageQuery{ChassisID: d.ChassisID, Limit: fullFetchLimit}
	if !initial {
		q.Since = d.since
	}
	items, err := d.repo.List(ctx, q)
	if err != nil {
		return err
	}
	if initial {
		d.items = items
	} else if len(items) > 0 {
		d.items = append(d.items, items...)
	}
	if n := len(d.items); n > 0 {
		if at := d.items[n-1].CreatedAt; at != "" {
			d.since = at
		}
	}
	return nil
}

// Snapshot devuelve la vista actual del diálogo para pintar.
func (d *Dialog) Snapshot() *dto.DialogSnapshotResponse {
	d.mu.Lock()
	defer d.mu.Unlock()

	msgs := make([]dto.ChatMessageView, 0, len(d.items))
	for _, m := range d.items {
		att := make([]string, 0, len(m.Attachments))
		for _, a := range m.Attachments {
			att = append(att, a.FilePath)
		}
		msgs = append(msgs, dto.ChatMessageView{
			ID:          m.ID.Int(),
			SenderType:  m.SenderType,
			SenderID:    m.SenderID.String(),
			Text:        m.Text,
			CreatedAt:   m.CreatedAt,
			Attachments: att,
		})
	}
	return &dto.DialogSnapshotResponse{DialogID: d.ID, Messages: msgs}
}

// Send transmite un mensaje del admin. Vacío total (ni texto ni archivos)
// no toca la red. Tras un envío exitoso dispara un pull inmediato fuera de
// cadencia; si el envío falla no hay reintento y el estado local no cambia.
func (d *Dialog) Send(ctx context.Context, text string, files []entity.ChatUpload) error {
	if strings.TrimSpace(text) == "" && len(files) == 0 {
		return nil
	}
	err := d.repo.Create(ctx, repository.MessageCreate{
		ChassisID:  d.ChassisID,
		SenderType: "admin",
		SenderID:   d.adminID,
		Text:       text,
		Files:      files,
	})
	if err != nil {
		d.log.Error().Err(err).Str("dialog_id", d.ID).Msg("envío de mensaje falló")
		return err
	}
	if err := d.fetch(ctx, false); err != nil {
		d.log.Warn().Err(err).Str("dialog_id", d.ID).Msg("pull tras envío falló")
	}
	return nil
}
