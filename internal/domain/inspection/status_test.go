package inspection_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portusapp/portus-console/internal/domain/inspection"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// hoy fijo para que los tests no dependan del reloj.
var today = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Tests ParseDate / DaysLeft
// ──────────────────────────────────────────────────────────────────────────────

func TestParseDate_FormasDelUpstream(t *testing.T) {
	_, ok := inspection.ParseDate("2024-06-20")
	assert.True(t, ok, "yyyy-mm-dd debe ser interpretable")

	_, ok = inspection.ParseDate("2024-06-20T00:00:00")
	assert.True(t, ok, "un prefijo ISO más largo debe interpretarse por los 10 primeros caracteres")

	_, ok = inspection.ParseDate("")
	assert.False(t, ok, "vacío no es fecha")

	_, ok = inspection.ParseDate("0000-00-00")
	assert.False(t, ok, "el cero de MySQL no es fecha")

	_, ok = inspection.ParseDate("no-es-fecha")
	assert.False(t, ok)
}

func TestDaysLeft_CalculaDesdeInicioDeDia(t *testing.T) {
	// La hora del día no debe influir: se compara inicio de día contra inicio de día.
	d, ok := inspection.DaysLeft("2024-06-20", today)
	require.True(t, ok)
	assert.Equal(t, 5, d, "del 15 al 20 hay 5 días")

	d, ok = inspection.DaysLeft("2024-06-15", today)
	require.True(t, ok)
	assert.Equal(t, 0, d, "hoy mismo son 0 días")

	d, ok = inspection.DaysLeft("2024-06-10", today)
	require.True(t, ok)
	assert.Equal(t, -5, d, "fecha pasada da días negativos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ChassiStatus — los cuatro cubos y sus fronteras
// ──────────────────────────────────────────────────────────────────────────────

func TestChassiStatus_Fronteras(t *testing.T) {
	casos := []struct {
		nombre string
		esp    string
		want   string
	}{
		{"sin fecha", "", inspection.StatusNoDate},
		{"fecha ilegible", "garbage", inspection.StatusNoDate},
		{"vencido ayer", "2024-06-14", inspection.StatusOverdue},
		{"vence hoy (0 días)", "2024-06-15", inspection.StatusDueSoon},
		{"vence en 7 días (borde)", "2024-06-22", inspection.StatusDueSoon},
		{"vence en 8 días", "2024-06-23", inspection.StatusOK},
		{"vence lejos", "2025-01-01", inspection.StatusOK},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.want, inspection.ChassiStatus(c.esp, today))
		})
	}
}

func TestChassiStatus_SinFechaEsDistintoDeVencido(t *testing.T) {
	// Un registro sin fecha nunca debe caer en el cubo de vencidos ni en el
	// de próximos: tiene su propio valor.
	assert.NotEqual(t, inspection.StatusOverdue, inspection.ChassiStatus("", today))
	assert.NotEqual(t, inspection.StatusDueSoon, inspection.ChassiStatus("", today))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests LkwAutoStatus — etiquetas alemanas, solo al guardar
// ──────────────────────────────────────────────────────────────────────────────

func TestLkwAutoStatus(t *testing.T) {
	assert.Equal(t, inspection.LkwStatusSchaden, inspection.LkwAutoStatus("2024-06-01", today),
		"fecha vencida debe dar Beschädigt")
	assert.Equal(t, inspection.LkwStatusBaldInsp, inspection.LkwAutoStatus("2024-06-20", today),
		"fecha próxima debe dar Bald Inspektion")
	assert.Equal(t, inspection.LkwStatusGut, inspection.LkwAutoStatus("2025-06-20", today))
	assert.Equal(t, inspection.LkwStatusGut, inspection.LkwAutoStatus("", today),
		"fecha ilegible o ausente cuenta como Gut")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DueBadge / FormatDisplay / NormalizeDate
// ──────────────────────────────────────────────────────────────────────────────

func TestDueBadge_TextosPorEstado(t *testing.T) {
	assert.Equal(t, "SP: нет даты", inspection.DueBadge("", "SP", today))
	assert.Equal(t, "SP: неверная дата", inspection.DueBadge("xx", "SP", today))
	assert.Equal(t, "SP: просрочен на 5 дн.", inspection.DueBadge("2024-06-10", "SP", today))
	assert.Equal(t, "SP: скоро (5 дн.)", inspection.DueBadge("2024-06-20", "SP", today))
	assert.Equal(t, "TÜF: ок (до 20.06.2025)", inspection.DueBadge("2025-06-20", "TÜF", today))
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "20.06.2024", inspection.FormatDisplay("2024-06-20"))
	assert.Equal(t, "20.06.2024", inspection.FormatDisplay("2024-06-20T12:00:00"),
		"el sufijo de hora se descarta")
	assert.Equal(t, "—", inspection.FormatDisplay(""))
	assert.Equal(t, "rota", inspection.FormatDisplay("rota"),
		"texto ilegible se muestra crudo")
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-06-20", inspection.NormalizeDate(" 2024-06-20 "))
	assert.Equal(t, "2024-06-20", inspection.NormalizeDate("2024-06-20T12:00:00"))
	assert.Equal(t, "", inspection.NormalizeDate("0000-00-00"))
	assert.Equal(t, "", inspection.NormalizeDate("basura"))
}
