// Package repository define los puertos hacia el API de flota remoto.
// La consola no posee almacenamiento propio: cada puerto es una fachada
// sobre la familia de endpoints correspondiente del upstream.
package repository

import (
	"context"

	"github.com/portusapp/portus-console/internal/domain/entity"
)

// ChassiWrite es el payload de alta/edición de un remolque. Los punteros de
// fecha distinguen "sin valor" (nil → null en el JSON) de una fecha real;
// Status viaja por compatibilidad aunque el listado lo recalcule.
type ChassiWrite struct {
	ID     int     `json:"id,omitempty"`
	IDAlt  int     `json:"id_chassi,omitempty"` // el upstream acepta ambos nombres en el PUT
	Nummer string  `json:"chassi_nummer"`
	Tuf    *string `json:"tuf"`
	Esp    *string `json:"esp"`
	Status *string `json:"status"`
}

// ChassiRepository opera la colección de remolques.
type ChassiRepository interface {
	List(ctx context.Context) ([]entity.Chassi, error)
	Create(ctx context.Context, in ChassiWrite) error
	Update(ctx context.Context, in ChassiWrite) error
	// Delete solo es éxito si el cuerpo de la respuesta trae el indicador
	// explícito; un 200 sin indicador es domain.ErrDeleteDenied.
	Delete(ctx context.Context, id int) error
}

// LkwWrite es el payload de alta/edición de un camión.
type LkwWrite struct {
	ID      int     `json:"id,omitempty"`
	IDAlt   int     `json:"id_lkw,omitempty"`
	Nummer  string  `json:"lkw_nummer"`
	Modell  string  `json:"modell"`
	Baujahr int     `json:"baujahr"`
	Tuf     *string `json:"tuf"`
	Esp     *string `json:"esp"`
	Status  *string `json:"status"`
}

// LkwRepository opera la colección de camiones.
type LkwRepository interface {
	List(ctx context.Context) ([]entity.Lkw, error)
	Create(ctx context.Context, in LkwWrite) error
	Update(ctx context.Context, in LkwWrite) error
	Delete(ctx context.Context, id int) error
}

// FahrerWrite es el payload de alta/edición de un conductor. El alta viaja
// form-urlencoded (solo campos con valor); la edición es un PUT JSON.
type FahrerWrite struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Chassi   string `json:"chassi,omitempty"`
	Lkw      string `json:"lkw,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// FahrerRepository opera la colección de conductores. El upstream no expone
// borrado; Delete devuelve domain.ErrNotSupported.
type FahrerRepository interface {
	List(ctx context.Context) ([]entity.Fahrer, error)
	Create(ctx context.Context, in FahrerWrite) error
	Update(ctx context.Context, id int, in FahrerWrite) error
	Delete(ctx context.Context, id int) error
}
