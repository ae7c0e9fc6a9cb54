package adjustment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateAdjustmentRequest_Validate(t *testing.T) {
	valid := CreateAdjustmentRequest{
		MonitorID:     "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		Fecha:         "2026-03-02",
		CantidadHoras: decimal.NewFromFloat(-2.5),
		Motivo:        "Descuento por salida anticipada",
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*CreateAdjustmentRequest)
	}{
		{"missing monitor_id", func(r *CreateAdjustmentRequest) { r.MonitorID = "" }},
		{"bad monitor_id", func(r *CreateAdjustmentRequest) { r.MonitorID = "not-a-uuid" }},
		{"missing fecha", func(r *CreateAdjustmentRequest) { r.Fecha = "" }},
		{"bad fecha", func(r *CreateAdjustmentRequest) { r.Fecha = "02/03/2026" }},
		{"zero hours", func(r *CreateAdjustmentRequest) { r.CantidadHoras = decimal.Zero }},
		{"over 24 hours", func(r *CreateAdjustmentRequest) { r.CantidadHoras = decimal.NewFromInt(25) }},
		{"under -24 hours", func(r *CreateAdjustmentRequest) { r.CantidadHoras = decimal.NewFromInt(-25) }},
		{"missing motivo", func(r *CreateAdjustmentRequest) { r.Motivo = "" }},
	}
	for _, c := range cases {
		req := valid
		c.mutate(&req)
		assert.Error(t, req.Validate(), c.name)
	}
}

func TestAdjustmentFilter_Resolve(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

	// No bounds: last 30 days
	var f AdjustmentFilter
	inicio, fin := f.Resolve(now)
	assert.Equal(t, "2026-03-01", inicio.Format("2006-01-02"))
	assert.Equal(t, "2026-03-31", fin.Format("2006-01-02"))

	// Explicit bounds win
	desde := "2026-01-15"
	hasta := "2026-02-15"
	f = AdjustmentFilter{FechaInicio: &desde, FechaFin: &hasta}
	inicio, fin = f.Resolve(now)
	assert.Equal(t, "2026-01-15", inicio.Format("2006-01-02"))
	assert.Equal(t, "2026-02-15", fin.Format("2006-01-02"))

	// Malformed bounds fall back to the defaults
	malo := "15/01/2026"
	f = AdjustmentFilter{FechaInicio: &malo, FechaFin: &hasta}
	inicio, fin = f.Resolve(now)
	assert.Equal(t, "2026-03-01", inicio.Format("2006-01-02"))
	assert.Equal(t, "2026-02-15", fin.Format("2006-01-02"))
}
