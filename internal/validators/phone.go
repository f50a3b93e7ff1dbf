package validators

import "strings"

// Normaliza telefone para dígitos (aceita +1, espaços, hífens)
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	return digits
}

func IsPhoneValid(phone string) bool {
	return len(NormalizePhone(phone)) == 10
}
