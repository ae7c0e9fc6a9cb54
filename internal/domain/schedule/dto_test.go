package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func slotReq(dia int, jornada, sede string) SlotRequest {
	return SlotRequest{DiaSemana: &dia, Jornada: jornada, Sede: sede}
}

func TestSlotRequest_Validate(t *testing.T) {
	valid := slotReq(0, "M", "SA")
	assert.NoError(t, valid.Validate())

	missingDia := SlotRequest{Jornada: "M", Sede: "SA"}
	assert.Error(t, missingDia.Validate())

	cases := []SlotRequest{
		slotReq(-1, "M", "SA"),
		slotReq(7, "M", "SA"),
		slotReq(0, "X", "SA"),
		slotReq(0, "m", "SA"),
		slotReq(0, "M", "XX"),
		slotReq(0, "M", ""),
	}
	for i, req := range cases {
		assert.Error(t, req.Validate(), "case %d", i)
	}
}

func TestBulkSlotsRequest_Validate(t *testing.T) {
	empty := BulkSlotsRequest{}
	assert.Error(t, empty.Validate())

	tooMany := BulkSlotsRequest{Horarios: make([]SlotRequest, 51)}
	assert.Error(t, tooMany.Validate())

	ok := BulkSlotsRequest{Horarios: []SlotRequest{slotReq(0, "M", "SA")}}
	assert.NoError(t, ok.Validate())
}

func TestToResponse_Displays(t *testing.T) {
	resp := ToResponse(ScheduleSlot{
		ID:        "abc",
		DiaSemana: 6,
		Jornada:   JornadaTarde,
		Sede:      SedeB,
	})

	assert.Equal(t, "Domingo", resp.DiaSemanaDisplay)
	assert.Equal(t, "Tarde", resp.JornadaDisplay)
	assert.Equal(t, "Sede B", resp.SedeDisplay)
	assert.Nil(t, resp.Usuario)

	username := "ana.gomez"
	nombre := "Ana Gomez"
	withUser := ToResponse(ScheduleSlot{
		ID:        "def",
		UserID:    "user-1",
		DiaSemana: 0,
		Jornada:   JornadaManana,
		Sede:      SedeA,
		Username:  &username,
		Nombre:    &nombre,
	})
	assert.NotNil(t, withUser.Usuario)
	assert.Equal(t, "ana.gomez", withUser.Usuario.Username)
}
