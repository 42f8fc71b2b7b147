// Package report arma el informe PDF de flota: una foto de remolques y
// camiones con sus fechas de inspección y estado, pensada para imprimir
// antes de una revisión.
package report

import (
	"context"
	"time"

	"github.com/portusapp/portus-console/internal/domain/inspection"
	"github.com/portusapp/portus-console/internal/domain/repository"
	"github.com/portusapp/portus-console/pkg/logger"
)

// Row es una línea del informe, ya formateada para presentación.
type Row struct {
	Kind   string // "Chassi" o "LKW"
	Nummer string
	Modell string
	Tuf    string
	Esp    string
	Status string
}

// Summary acompaña a las filas con los contadores por estado de remolque.
type Summary struct {
	Total   int
	OK      int
	DueSoon int
	Overdue int
	NoDate  int
}

// Generator produce los bytes del documento a partir de las filas.
type Generator interface {
	FleetReport(ctx context.Context, rows []Row, sum Summary, generatedAt time.Time) ([]byte, error)
}

// UseCase carga ambas colecciones y delega la maquetación al generador.
type UseCase struct {
	chassis repository.ChassiRepository
	lkws    repository.LkwRepository
	gen     Generator
	log     *logger.Logger
	now     func() time.Time
}

func NewUseCase(chassis repository.ChassiRepository, lkws repository.LkwRepository, gen Generator, log *logger.Logger) *UseCase {
	return &UseCase{chassis: chassis, lkws: lkws, gen: gen, log: log, now: time.Now}
}

// Build genera el informe. Requiere ambas colecciones: si cualquiera de
// las dos cargas falla no hay informe parcial.
func (uc *UseCase) Build(ctx context.Context) ([]byte, error) {
	today := uc.now()

	chassis, err := uc.chassis.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("informe: carga de remolques falló")
		return nil, err
	}
	lkws, err := uc.lkws.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("informe: carga de camiones falló")
		return nil, err
	}

	rows := make([]Row, 0, len(chassis)+len(lkws))
	var sum Summary
	for _, c := range chassis {
		status := inspection.ChassiStatus(c.Esp, today)
		// El documento va en latín (la fuente del generador no cubre
		// cirílico); el estado derivado se traduce a la etiqueta impresa.
		var label string
		switch status {
		case inspection.StatusOK:
			sum.OK++
			label = "OK"
		case inspection.StatusDueSoon:
			sum.DueSoon++
			label = "Bald fällig"
		case inspection.StatusOverdue:
			sum.Overdue++
			label = "Überfällig"
		default:
			sum.NoDate++
			label = "Ohne Datum"
		}
		rows = append(rows, Row{
			Kind:   "Chassi",
			Nummer: c.Nummer,
			Tuf:    inspection.FormatDisplay(c.Tuf),
			Esp:    inspection.FormatDisplay(c.Esp),
			Status: label,
		})
	}
	sum.Total = len(chassis)

	for _, l := range lkws {
		status := l.Status
		if status == "" {
			status = "—"
		}
		rows = append(rows, Row{
			Kind:   "LKW",
			Nummer: l.Nummer,
			Modell: l.Modell,
			Tuf:    inspection.FormatDisplay(l.Tuf),
			Esp:    inspection.FormatDisplay(l.Esp),
			Status: status,
		})
	}

	return uc.gen.FleetReport(ctx, rows, sum, today)
}
