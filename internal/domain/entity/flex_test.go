package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portusapp/portus-console/internal/domain/entity"
)

// El upstream mezcla en la misma colección filas con el id bajo distinto
// nombre y con escalares como número o como cadena; estas son las formas
// reales observadas.

func TestChassi_DecodificaAliasDeID(t *testing.T) {
	casos := []struct {
		nombre string
		raw    string
		wantID int
	}{
		{"id_chassi numérico", `{"id_chassi": 7, "chassi_nummer": "AB-123"}`, 7},
		{"id como cadena", `{"id": "12", "chassi_nummer": "CD-456"}`, 12},
		{"_id heredado", `{"_id": 3, "chassi_nummer": "EF-789"}`, 3},
		{"chassi_id alternativo", `{"chassi_id": "9", "chassi_nummer": "GH-000"}`, 9},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			var ch entity.Chassi
			require.NoError(t, json.Unmarshal([]byte(c.raw), &ch))
			assert.Equal(t, c.wantID, ch.ID)
		})
	}
}

func TestChassi_EscalaresMixtos(t *testing.T) {
	raw := `{"id_chassi": "15", "chassi_nummer": 4711, "tuf": null, "esp": "2024-06-20"}`
	var ch entity.Chassi
	require.NoError(t, json.Unmarshal([]byte(raw), &ch))

	assert.Equal(t, 15, ch.ID)
	assert.Equal(t, "4711", ch.Nummer, "un número de unidad numérico se conserva como texto")
	assert.Equal(t, "", ch.Tuf, "null queda como cadena vacía")
	assert.Equal(t, "2024-06-20", ch.Esp)
}

func TestFlexInt_ValorIlegibleQuedaEnCero(t *testing.T) {
	var f entity.FlexInt
	require.NoError(t, json.Unmarshal([]byte(`"no-numérico"`), &f),
		"un escalar ilegible no debe tumbar la fila")
	assert.Equal(t, 0, f.Int())
}

func TestUser_AliasLegados(t *testing.T) {
	raw := `{"id_user": "4", "Vorname": "Iwan", "Nachname": "Petrov", "email": "iwan@example.com", "Role": "admin"}`
	var u entity.User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))

	assert.Equal(t, 4, u.ID)
	assert.Equal(t, "Iwan", u.Name)
	assert.Equal(t, "Petrov", u.Lastname)
	assert.Equal(t, "admin", u.Role)
}
