package schedule

type Jornada string

const (
	JornadaManana Jornada = "M"
	JornadaTarde  Jornada = "T"
)

type Sede string

const (
	SedeA Sede = "SA"
	SedeB Sede = "BA"
)

// ScheduleSlot is a recurring weekly commitment of one user:
// one (day, shift) pair at one site. At most one slot may exist per
// (user, dia_semana, jornada).
type ScheduleSlot struct {
	ID        string
	UserID    string
	DiaSemana int // 0-6
	Jornada   Jornada
	Sede      Sede

	// Join fields for listings
	Username *string
	Nombre   *string
}

var diaSemanaNames = [7]string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo",
}

func DiaSemanaDisplay(dia int) string {
	if dia < 0 || dia > 6 {
		return ""
	}
	return diaSemanaNames[dia]
}

func (j Jornada) Display() string {
	switch j {
	case JornadaManana:
		return "Mañana"
	case JornadaTarde:
		return "Tarde"
	}
	return string(j)
}

func (s Sede) Display() string {
	switch s {
	case SedeA:
		return "Sede A"
	case SedeB:
		return "Sede B"
	}
	return string(s)
}
