package fleetapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/portusapp/portus-console/internal/domain"
	"github.com/portusapp/portus-console/internal/domain/entity"
	"github.com/portusapp/portus-console/internal/domain/repository"
)

// Verificar en tiempo de compilación que ChassiGateway implementa el puerto.
var _ repository.ChassiRepository = (*ChassiGateway)(nil)

// ChassiGateway opera la familia de endpoints /chassi.
type ChassiGateway struct {
	c *Client
}

// NewChassiGateway construye el gateway.
func NewChassiGateway(c *Client) *ChassiGateway {
	return &ChassiGateway{c: c}
}

// List descarga la colección completa de remolques.
func (g *ChassiGateway) List(ctx context.Context) ([]entity.Chassi, error) {
	body, err := g.c.getJSON(ctx, "/chassi", nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems(body, "chassi", "data")
	if err != nil {
		return nil, err
	}
	return decodeRows[entity.Chassi](g.c, items, "chassi"), nil
}

// Create da de alta un remolque.
func (g *ChassiGateway) Create(ctx context.Context, in repository.ChassiWrite) error {
	body, err := g.c.sendJSON(ctx, http.MethodPost, "/chassi", in)
	if err != nil {
		return err
	}
	return checkFault(body)
}

// Update edita un remolque; el id viaja en el cuerpo, no en la ruta.
func (g *ChassiGateway) Update(ctx context.Context, in repository.ChassiWrite) error {
	body, err := g.c.sendJSON(ctx, http.MethodPut, "/chassi", in)
	if err != nil {
		return err
	}
	return checkFault(body)
}

// Delete borra por id. El upstream responde 200 siempre; el borrado solo
// cuenta si el cuerpo trae status == 200.
func (g *ChassiGateway) Delete(ctx context.Context, id int) error {
	body, err := g.c.delete(ctx, fmt.Sprintf("/chassi/delete/%d", id))
	if err != nil {
		return err
	}
	return checkDeleteAck(body)
}

// checkDeleteAck valida el indicador explícito de éxito de un borrado.
func checkDeleteAck(body []byte) error {
	var ack struct {
		Status entity.FlexInt `json:"status"`
		Error  string         `json:"error"`
	}
	if err := json.Unmarshal(body, &ack); err != nil {
		return fmt.Errorf("%w: cuerpo ilegible", domain.ErrDeleteDenied)
	}
	if ack.Status.Int() != http.StatusOK {
		if ack.Error != "" {
			return fmt.Errorf("%w: %s", domain.ErrDeleteDenied, ack.Error)
		}
		return domain.ErrDeleteDenied
	}
	return nil
}
