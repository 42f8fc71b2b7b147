// Package inspection deriva estados de inspección a partir de las fechas
// TÜF/ESP. Todo es puro: se recalcula en cada render con el "hoy" que se
// reciba y nunca se persiste.
//
// Hay tres juegos de etiquetas, mantenidos por separado a propósito porque
// así los consume el frontend histórico:
//   - el estado derivado del remolque (ruso, valores de filtro);
//   - el texto del badge por fecha (ruso, presentación);
//   - el estado automático del camión al guardar (alemán, valor de dato).
package inspection

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Estado derivado del remolque, calculado siempre desde Esp.
const (
	StatusOK      = "В порядке"
	StatusDueSoon = "Скоро Тех. Осмотр"
	StatusOverdue = "Просрочено"
	StatusNoDate  = "Нет даты" // fecha ausente o ilegible; distinto de los tres anteriores
)

// FilterAll es el valor de filtro que no descarta ningún estado.
const FilterAll = "Все"

// Estado automático del camión: solo se aplica al guardar con status vacío.
const (
	LkwStatusGut      = "Gut"
	LkwStatusSchaden  = "Beschädigt"
	LkwStatusBaldInsp = "Bald Inspektion"
)

// dueSoonDays es el umbral de "pronto": de 0 a 7 días inclusive.
const dueSoonDays = 7

const dateLayout = "2006-01-02"

// ParseDate interpreta una fecha del upstream: yyyy-mm-dd o un prefijo ISO
// más largo. Devuelve ok=false para vacío, "0000-00-00" o texto ilegible.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0000-00-00" {
		return time.Time{}, false
	}
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaysLeft devuelve los días (ceil) entre el inicio del día de hoy y el de
// la fecha objetivo. ok=false si la fecha no es interpretable.
func DaysLeft(date string, today time.Time) (int, bool) {
	target, ok := ParseDate(date)
	if !ok {
		return 0, false
	}
	base := startOfDay(today)
	goal := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, today.Location())
	return int(math.Ceil(goal.Sub(base).Hours() / 24)), true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ChassiStatus clasifica un remolque según su fecha Esp.
func ChassiStatus(esp string, today time.Time) string {
	d, ok := DaysLeft(esp, today)
	switch {
	case !ok:
		return StatusNoDate
	case d < 0:
		return StatusOverdue
	case d <= dueSoonDays:
		return StatusDueSoon
	default:
		return StatusOK
	}
}

// LkwAutoStatus elige el estado por defecto de un camión cuando el usuario
// deja el campo vacío al guardar. Fecha ilegible cuenta como Gut, igual que
// siempre lo hizo el formulario.
func LkwAutoStatus(esp string, today time.Time) string {
	d, ok := DaysLeft(esp, today)
	switch {
	case !ok:
		return LkwStatusGut
	case d < 0:
		return LkwStatusSchaden
	case d <= dueSoonDays:
		return LkwStatusBaldInsp
	default:
		return LkwStatusGut
	}
}

// DueBadge arma el texto del badge de una fecha concreta ("TÜF" o "SP").
// Es el segundo juego de cadenas; no reutiliza los estados de arriba.
func DueBadge(date, label string, today time.Time) string {
	if strings.TrimSpace(date) == "" {
		return label + ": нет даты"
	}
	d, ok := DaysLeft(date, today)
	if !ok {
		return label + ": неверная дата"
	}
	switch {
	case d < 0:
		return fmt.Sprintf("%s: просрочен на %d дн.", label, -d)
	case d <= dueSoonDays:
		return fmt.Sprintf("%s: скоро (%d дн.)", label, d)
	default:
		return fmt.Sprintf("%s: ок (до %s)", label, FormatDisplay(date))
	}
}

// FormatDisplay presenta una fecha como dd.mm.yyyy; "—" si está vacía y el
// prefijo crudo si no se puede interpretar.
func FormatDisplay(date string) string {
	s := strings.TrimSpace(date)
	if s == "" {
		return "—"
	}
	t, ok := ParseDate(s)
	if !ok {
		if len(s) > 10 {
			return s[:10]
		}
		return s
	}
	return t.Format("02.01.2006")
}

// NormalizeDate deja una fecha del upstream en yyyy-mm-dd o vacío. Es la
// normalización que aplica el formulario al abrirse y el caso de uso antes
// de transmitir.
func NormalizeDate(date string) string {
	s := strings.TrimSpace(date)
	if _, ok := ParseDate(s); !ok {
		return ""
	}
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
