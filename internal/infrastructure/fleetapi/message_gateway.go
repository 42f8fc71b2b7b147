package fleetapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/portusapp/portus-console/internal/domain/entity"
	"github.com/portusapp/portus-console/internal/domain/repository"
)

var (
	_ repository.MessageRepository    = (*MessageGateway)(nil)
	_ repository.TranscriptRepository = (*MessageGateway)(nil)
)

// MessageGateway cubre los dos canales de mensajería por chassi: el vivo
// (chassis_messages.php) y el transcript de solo lectura (message_chassi +
// files_chassi).
type MessageGateway struct {
	c *Client
}

// NewMessageGateway construye el gateway.
func NewMessageGateway(c *Client) *MessageGateway {
	return &MessageGateway{c: c}
}

// List trae mensajes del canal vivo. Con Since vacío pide el histórico;
// con cursor, solo lo posterior.
func (g *MessageGateway) List(ctx context.Context, q repository.MessageQuery) ([]entity.ChatMessage, error) {
	params := url.Values{}
	params.Set("chassis_id", strconv.Itoa(q.ChassisID))
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Since != "" {
		params.Set("since", q.Since)
	}

	body, err := g.c.getJSON(ctx, "/api/chassis_messages.php", params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems(body, "items")
	if err != nil {
		return nil, err
	}
	return decodeRows[entity.ChatMessage](g.c, items, "chassis_messages"), nil
}

// Create envía un mensaje del admin como multipart: chassis_id,
// sender_type, sender_id, text y files[].
func (g *MessageGateway) Create(ctx context.Context, in repository.MessageCreate) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("chassis_id", strconv.Itoa(in.ChassisID)); err != nil {
		return fmt.Errorf("fleetapi: armar multipart: %w", err)
	}
	if err := w.WriteField("sender_type", in.SenderType); err != nil {
		return fmt.Errorf("fleetapi: armar multipart: %w", err)
	}
	if err := w.WriteField("sender_id", in.SenderID); err != nil {
		return fmt.Errorf("fleetapi: armar multipart: %w", err)
	}
	if in.Text != "" {
		if err := w.WriteField("text", in.Text); err != nil {
			return fmt.Errorf("fleetapi: armar multipart: %w", err)
		}
	}
	for _, f := range in.Files {
		part, err := w.CreateFormFile("files[]", f.Name)
		if err != nil {
			return fmt.Errorf("fleetapi: armar multipart: %w", err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return fmt.Errorf("fleetapi: armar multipart: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("fleetapi: armar multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.c.baseURL+"/api/chassis_messages_create.php", &buf)
	if err != nil {
		return fmt.Errorf("fleetapi: crear request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	body, err := g.c.do(req)
	if err != nil {
		return err
	}
	return checkFault(body)
}

// Messages trae el transcript completo de un chassi.
func (g *MessageGateway) Messages(ctx context.Context, chassisID int) ([]entity.TranscriptMessage, error) {
	params := url.Values{}
	params.Set("id_chassi", strconv.Itoa(chassisID))

	body, err := g.c.getJSON(ctx, "/message_chassi", params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems(body, "messages", "data")
	if err != nil {
		return nil, err
	}
	return decodeRows[entity.TranscriptMessage](g.c, items, "message_chassi"), nil
}

// Files trae los adjuntos de un mensaje del transcript.
func (g *MessageGateway) Files(ctx context.Context, messageID int) ([]entity.TranscriptFile, error) {
	params := url.Values{}
	params.Set("id_message", strconv.Itoa(messageID))

	body, err := g.c.getJSON(ctx, "/files_chassi", params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems(body, "data", "files")
	if err != nil {
		return nil, err
	}
	return decodeRows[entity.TranscriptFile](g.c, items, "files_chassi"), nil
}
