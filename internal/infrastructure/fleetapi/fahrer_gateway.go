package fleetapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/portusapp/portus-console/internal/domain"
	"github.com/portusapp/portus-console/internal/domain/entity"
	"github.com/portusapp/portus-console/internal/domain/repository"
)

var _ repository.FahrerRepository = (*FahrerGateway)(nil)

// FahrerGateway opera la familia de endpoints /fahrer.
type FahrerGateway struct {
	c *Client
}

// NewFahrerGateway construye el gateway.
func NewFahrerGateway(c *Client) *FahrerGateway {
	return &FahrerGateway{c: c}
}

// List descarga la colección completa de conductores.
func (g *FahrerGateway) List(ctx context.Context) ([]entity.Fahrer, error) {
	body, err := g.c.getJSON(ctx, "/fahrer", nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems(body, "drivers", "data")
	if err != nil {
		return nil, err
	}
	return decodeRows[entity.Fahrer](g.c, items, "fahrer"), nil
}

// Create da de alta un conductor. El alta viaja form-urlencoded y solo con
// los campos que tienen valor; el éxito se acepta con success, con driver o
// con un 2xx limpio (detección tolerante heredada del upstream).
func (g *FahrerGateway) Create(ctx context.Context, in repository.FahrerWrite) error {
	form := url.Values{}
	setIf := func(key, val string) {
		if val != "" {
			form.Set(key, val)
		}
	}
	setIf("name", in.Name)
	setIf("lastname", in.Lastname)
	setIf("email", in.Email)
	setIf("password", in.Password)
	setIf("chassi", in.Chassi)
	setIf("lkw", in.Lkw)
	setIf("phone", in.Phone)

	body, err := g.c.postForm(ctx, "/fahrer", form)
	if err != nil {
		return err
	}
	return checkCreateAck(body)
}

// Update edita un conductor con un PUT JSON y el id en la ruta.
func (g *FahrerGateway) Update(ctx context.Context, id int, in repository.FahrerWrite) error {
	body, err := g.c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/fahrer/%d", id), in)
	if err != nil {
		return err
	}
	return checkCreateAck(body)
}

// Delete no existe en el upstream.
func (g *FahrerGateway) Delete(ctx context.Context, id int) error {
	_ = id
	return domain.ErrNotSupported
}

// checkCreateAck acepta el éxito tolerante de /fahrer: un campo success,
// un objeto driver, o simplemente un 2xx sin marcadores de error.
func checkCreateAck(body []byte) error {
	if err := checkFault(body); err != nil {
		return err
	}
	var probe struct {
		Success bool            `json:"success"`
		Driver  json.RawMessage `json:"driver"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		// cuerpo no-JSON en un 2xx sin marcador de fallo: se acepta
		return nil
	}
	if probe.Success || len(probe.Driver) > 0 {
		return nil
	}
	if probe.Message != "" {
		return &UpstreamError{Status: http.StatusOK, Body: probe.Message}
	}
	return nil
}
