package negotiation

import "github.com/suryadizhang/mh-scheduler/internal/httperr"

// ===============================
// Incentivos de comida: só comida, menor custo primeiro.
// Nunca dinheiro nem desconto de proteína.
// ===============================

const (
	IncentiveNone          = "none"
	IncentiveFreeNoodles   = "free_noodles"
	IncentiveFreeAppetizer = "free_appetizer"
)

// IncentiveForShift mapeia a magnitude do deslocamento para o tier.
// Só 30 e 60 minutos são definidos; qualquer outro valor é rejeitado
// (gap de configuração: não adivinhar um tier).
func IncentiveForShift(shiftMinutes int) (string, error) {
	if shiftMinutes < 0 {
		shiftMinutes = -shiftMinutes
	}

	switch shiftMinutes {
	case 30:
		return IncentiveFreeNoodles, nil
	case 60:
		return IncentiveFreeAppetizer, nil
	}
	return "", httperr.ErrBusiness("invalid_shift")
}

// FlexibilityScore = accepted/total * 10 (0-10)
func FlexibilityScore(accepted, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(accepted) / float64(total) * 10
}
