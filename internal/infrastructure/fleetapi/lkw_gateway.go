package fleetapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/portusapp/portus-console/internal/domain/entity"
	"github.com/portusapp/portus-console/internal/domain/repository"
)

var _ repository.LkwRepository = (*LkwGateway)(nil)

// LkwGateway opera la familia de endpoints /lkw.
type LkwGateway struct {
	c *Client
}

// NewLkwGateway construye el gateway.
func NewLkwGateway(c *Client) *LkwGateway {
	return &LkwGateway{c: c}
}

// List descarga la colección completa de camiones.
func (g *LkwGateway) List(ctx context.Context) ([]entity.Lkw, error) {
	body, err := g.c.getJSON(ctx, "/lkw", nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems(body, "lkw", "data")
	if err != nil {
		return nil, err
	}
	return decodeRows[entity.Lkw](g.c, items, "lkw"), nil
}

// Create da de alta un camión.
func (g *LkwGateway) Create(ctx context.Context, in repository.LkwWrite) error {
	body, err := g.c.sendJSON(ctx, http.MethodPost, "/lkw", in)
	if err != nil {
		return err
	}
	return checkFault(body)
}

// Update edita un camión; el id viaja en el cuerpo.
func (g *LkwGateway) Update(ctx context.Context, in repository.LkwWrite) error {
	body, err := g.c.sendJSON(ctx, http.MethodPut, "/lkw", in)
	if err != nil {
		return err
	}
	return checkFault(body)
}

// Delete borra por id, con el mismo indicador explícito que /chassi.
func (g *LkwGateway) Delete(ctx context.Context, id int) error {
	body, err := g.c.delete(ctx, fmt.Sprintf("/lkw/%d", id))
	if err != nil {
		return err
	}
	return checkDeleteAck(body)
}
