package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateAttendanceRequest_Validate(t *testing.T) {
	presente := true
	valid := CreateAttendanceRequest{
		HorarioID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		Fecha:     "2026-03-02",
		Presente:  &presente,
		Horas:     decimal.NewFromInt(4),
	}
	assert.NoError(t, valid.Validate())

	// Hour boundaries: 0 and 24 are accepted, anything outside is not
	hourCases := []struct {
		horas string
		ok    bool
	}{
		{"0", true},
		{"0.5", true},
		{"24", true},
		{"24.01", false},
		{"25", false},
		{"-0.5", false},
	}
	for _, c := range hourCases {
		req := valid
		req.Horas = decimal.RequireFromString(c.horas)
		err := req.Validate()
		if c.ok {
			assert.NoError(t, err, "horas=%s", c.horas)
		} else {
			assert.Error(t, err, "horas=%s", c.horas)
		}
	}

	cases := []struct {
		name   string
		mutate func(*CreateAttendanceRequest)
	}{
		{"missing horario_id", func(r *CreateAttendanceRequest) { r.HorarioID = "" }},
		{"bad horario_id", func(r *CreateAttendanceRequest) { r.HorarioID = "not-a-uuid" }},
		{"missing fecha", func(r *CreateAttendanceRequest) { r.Fecha = "" }},
		{"bad fecha", func(r *CreateAttendanceRequest) { r.Fecha = "02/03/2026" }},
		{"missing presente", func(r *CreateAttendanceRequest) { r.Presente = nil }},
	}
	for _, c := range cases {
		req := valid
		c.mutate(&req)
		assert.Error(t, req.Validate(), c.name)
	}
}

func TestUpdateAttendanceRequest_Validate(t *testing.T) {
	empty := UpdateAttendanceRequest{}
	assert.Error(t, empty.Validate())

	presente := false
	onlyPresente := UpdateAttendanceRequest{Presente: &presente}
	assert.NoError(t, onlyPresente.Validate())

	zero := decimal.Zero
	max := decimal.NewFromInt(24)
	over := decimal.NewFromInt(25)
	negative := decimal.NewFromInt(-1)

	assert.NoError(t, (&UpdateAttendanceRequest{Horas: &zero}).Validate())
	assert.NoError(t, (&UpdateAttendanceRequest{Horas: &max}).Validate())
	assert.Error(t, (&UpdateAttendanceRequest{Horas: &over}).Validate())
	assert.Error(t, (&UpdateAttendanceRequest{Horas: &negative}).Validate())
}

func TestAuthorizeAttendanceRequest_Validate(t *testing.T) {
	for _, estado := range []string{"pendiente", "autorizado", "rechazado"} {
		req := AuthorizeAttendanceRequest{Estado: estado}
		assert.NoError(t, req.Validate(), estado)
	}
	for _, estado := range []string{"", "aprobado", "AUTORIZADO"} {
		req := AuthorizeAttendanceRequest{Estado: estado}
		assert.Equal(t, ErrInvalidStatus, req.Validate(), estado)
	}
}
