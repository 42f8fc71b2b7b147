package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// El upstream PHP mezcla tipos en el mismo campo según la fila: ids como
// número o como cadena numérica, números de unidad como cadena o número.
// FlexInt y FlexString absorben esa mezcla al decodificar; un valor que no
// se puede interpretar queda en cero/vacío en lugar de tumbar el listado.

// FlexInt acepta un número JSON, una cadena numérica o null.
type FlexInt int

// UnmarshalJSON implementa la decodificación tolerante.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(b), `"`)))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

// MarshalJSON emite siempre un número.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// Int devuelve el valor como int nativo.
func (f FlexInt) Int() int { return int(f) }

// FlexString acepta una cadena, un número JSON o null.
type FlexString string

// UnmarshalJSON implementa la decodificación tolerante.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	// número u otro escalar: usar la representación literal
	*f = FlexString(strings.Trim(string(b), `"`))
	return nil
}

// MarshalJSON emite siempre una cadena.
func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// String devuelve el valor como string nativo.
func (f FlexString) String() string { return string(f) }
