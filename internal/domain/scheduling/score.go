package scheduling

// ===============================
// Score de candidatos a chef (0-100)
// ===============================

type Candidate struct {
	ChefID uint

	TravelMinutes int
	TravelKm      float64

	// carga do mesmo dia + adjacência de rota
	SameDayBookings int
	ChainAdjacent   bool

	CustomerRequested bool
}

const (
	maxTravelPenalty    = 50.0
	travelPenaltyPerMin = 0.5
	workloadPenalty     = 8.0
	chainBonus          = 10.0
	requestedBonus      = 25.0
)

// Score compõe viagem (menor melhor), carga do dia (menos transições
// melhor) e preferência do cliente (fortemente preferido)
func Score(c Candidate) float64 {
	score := 100.0

	travel := float64(c.TravelMinutes) * travelPenaltyPerMin
	if travel > maxTravelPenalty {
		travel = maxTravelPenalty
	}
	score -= travel

	score -= float64(c.SameDayBookings) * workloadPenalty

	if c.ChainAdjacent {
		score += chainBonus
	}
	if c.CustomerRequested {
		score += requestedBonus
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
