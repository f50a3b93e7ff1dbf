package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// Códigos de negócio do scheduler (ver taxonomia no contrato da API)
const (
	CodeSlotConflict             = "slot_conflict"
	CodeSlotFull                 = "slot_full"
	CodeDeadlineExceeded         = "deadline_exceeded"
	CodePreferredChefUnavailable = "preferred_chef_unavailable"
	CodeConfigMissing            = "config_missing"
	CodeInvalidTransition        = "invalid_transition"
)
