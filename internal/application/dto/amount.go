package dto

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-mis/internal/domain/rules"
)

// Amount es un número digitado en un formulario. Acepta número JSON o string;
// lo vacío o no numérico vale 0 y nunca rompe el parseo del cuerpo.
type Amount struct {
	decimal.Decimal
	set bool
}

// NewAmount construye un Amount desde un decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d, set: true}
}

// UnmarshalJSON implementa json.Unmarshaler con coerción a cero.
// Los strings se decodifican como JSON para resolver escapes ("\u0031" = "1").
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal([]byte(s), &str); err != nil {
			str = ""
		}
		s = strings.TrimSpace(str)
	}
	a.set = s != "" && s != "null"
	a.Decimal = rules.ParseAmount(s)
	return nil
}

// IsBlank indica que el campo no llegó, llegó vacío o null (aún no digitado).
func (a Amount) IsBlank() bool {
	return !a.set
}
