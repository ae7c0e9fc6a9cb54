package sysconfig

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTipoDato_Valid(t *testing.T) {
	for _, tipo := range []TipoDato{TipoDecimal, TipoEntero, TipoBooleano, TipoTexto} {
		assert.True(t, tipo.Valid(), "tipo %q", tipo)
	}
	for _, tipo := range []TipoDato{"", "string", "DECIMAL", "float"} {
		assert.False(t, tipo.Valid(), "tipo %q", tipo)
	}
}

func TestTipoDato_ValidValue(t *testing.T) {
	cases := []struct {
		tipo TipoDato
		raw  string
		want bool
	}{
		{TipoDecimal, "9965", true},
		{TipoDecimal, "10250.50", true},
		{TipoDecimal, "-2.5", true},
		{TipoDecimal, "nueve mil", false},
		{TipoEntero, "14", true},
		{TipoEntero, "-3", true},
		{TipoEntero, "14.5", false},
		{TipoEntero, "catorce", false},
		{TipoBooleano, "true", true},
		{TipoBooleano, "SI", true},
		{TipoBooleano, "0", true},
		{TipoBooleano, "tal vez", false},
		{TipoTexto, "cualquier cosa", true},
		{TipoTexto, "", true},
	}
	for _, c := range cases {
		got := c.tipo.ValidValue(c.raw)
		assert.Equal(t, c.want, got, "%s.ValidValue(%q)", c.tipo, c.raw)
	}
}

func TestConfigEntry_Decode(t *testing.T) {
	d := ConfigEntry{Valor: "9965.50", TipoDato: TipoDecimal}.Decode()
	dec, ok := d.(decimal.Decimal)
	assert.True(t, ok)
	assert.True(t, dec.Equal(decimal.NewFromFloat(9965.50)))

	assert.Equal(t, int64(14), ConfigEntry{Valor: "14", TipoDato: TipoEntero}.Decode())
	assert.Equal(t, true, ConfigEntry{Valor: "si", TipoDato: TipoBooleano}.Decode())
	assert.Equal(t, false, ConfigEntry{Valor: "NO", TipoDato: TipoBooleano}.Decode())
	assert.Equal(t, "hola", ConfigEntry{Valor: "hola", TipoDato: TipoTexto}.Decode())

	// Corrupt stored values fall back to the raw string
	assert.Equal(t, "abc", ConfigEntry{Valor: "abc", TipoDato: TipoEntero}.Decode())
}
