package sysconfig

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TipoDato is the declared type of a configuration value. The value itself is
// stored as text and validated against its type on every write.
type TipoDato string

const (
	TipoDecimal  TipoDato = "decimal"
	TipoEntero   TipoDato = "entero"
	TipoBooleano TipoDato = "booleano"
	TipoTexto    TipoDato = "texto"
)

func (t TipoDato) Valid() bool {
	switch t {
	case TipoDecimal, TipoEntero, TipoBooleano, TipoTexto:
		return true
	}
	return false
}

var truthyValues = map[string]bool{
	"true": true, "1": true, "yes": true, "si": true,
	"false": false, "0": false, "no": false,
}

type ConfigEntry struct {
	ID          string
	Clave       string
	Valor       string
	TipoDato    TipoDato
	Descripcion string
	CreadoPor   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidValue reports whether raw parses under the entry's declared type.
func (t TipoDato) ValidValue(raw string) bool {
	switch t {
	case TipoDecimal:
		_, err := decimal.NewFromString(raw)
		return err == nil
	case TipoEntero:
		_, err := strconv.Atoi(raw)
		return err == nil
	case TipoBooleano:
		_, ok := truthyValues[strings.ToLower(raw)]
		return ok
	case TipoTexto:
		return true
	}
	return false
}

// Decode returns the stored value as its declared Go type: decimal.Decimal,
// int64, bool or string. Values are validated on write, so a decode failure
// on read falls back to the raw string.
func (e ConfigEntry) Decode() any {
	switch e.TipoDato {
	case TipoDecimal:
		if d, err := decimal.NewFromString(e.Valor); err == nil {
			return d
		}
	case TipoEntero:
		if n, err := strconv.ParseInt(e.Valor, 10, 64); err == nil {
			return n
		}
	case TipoBooleano:
		if b, ok := truthyValues[strings.ToLower(e.Valor)]; ok {
			return b
		}
	}
	return e.Valor
}
