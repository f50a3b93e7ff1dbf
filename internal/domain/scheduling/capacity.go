package scheduling

// ===============================
// Capacidade dual-mode (§ agenda próxima vs. longo prazo)
// ===============================

const (
	ModeChefAvailability = "chef_availability"
	ModeLongAdvance      = "long_advance"
)

type CapacityInput struct {
	DaysUntilEvent int
	WindowDays     int // chef_availability_window_days

	AvailableChefs int // chefs com ChefAvailability cobrindo o dia/slot
	LongAdvanceCap int // long_advance_slot_capacity

	ExistingCount int // holds + bookings ativos no slot
}

type CapacityResult struct {
	Mode      string `json:"mode"`
	Capacity  int    `json:"capacity"`
	Remaining int    `json:"remaining"`
}

// Evaluate decide a capacidade do slot:
// - dentro da janela: agenda real dos chefs é confiável
// - fora da janela: cap configurado segura reservas especulativas
func Evaluate(in CapacityInput) CapacityResult {
	mode := ModeLongAdvance
	capacity := in.LongAdvanceCap

	if in.DaysUntilEvent <= in.WindowDays {
		mode = ModeChefAvailability
		capacity = in.AvailableChefs
	}

	remaining := capacity - in.ExistingCount
	if remaining < 0 {
		remaining = 0
	}

	return CapacityResult{
		Mode:      mode,
		Capacity:  capacity,
		Remaining: remaining,
	}
}

// Accepts: empate é rejeitado: nunca overbooking
func (r CapacityResult) Accepts() bool {
	return r.Remaining > 0
}
