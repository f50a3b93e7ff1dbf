package scheduling

import (
	"time"

	"github.com/suryadizhang/mh-scheduler/internal/httperr"
)

// Os quatro horários fixos de serviço por station
var SlotTimes = []string{"12:00", "15:00", "18:00", "21:00"}

func IsValidSlot(slot string) bool {
	for _, s := range SlotTimes {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotDatetime monta o datetime do evento (date + slot) no timezone da station
func SlotDatetime(eventDate time.Time, slot string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_slot")
	}
	return time.Date(
		eventDate.Year(), eventDate.Month(), eventDate.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), nil
}

// IsValidTimeOfDay valida um HH:mm genérico (grade de disponibilidade)
func IsValidTimeOfDay(hhmm string) bool {
	_, err := time.Parse("15:04", hhmm)
	return err == nil
}

// SlotIndex devolve a posição do slot na grade do dia, ou -1
func SlotIndex(slot string) int {
	for i, s := range SlotTimes {
		if s == slot {
			return i
		}
	}
	return -1
}

// AdjacentSlots: slots vizinhos na grade (encadeamento de rota)
func AdjacentSlots(a, b string) bool {
	ia, ib := SlotIndex(a), SlotIndex(b)
	if ia < 0 || ib < 0 {
		return false
	}
	diff := ia - ib
	return diff == 1 || diff == -1
}

// ShiftSlot desloca um HH:mm em minutos (negociação ±30/±60)
func ShiftSlot(slot string, minutes int) (string, error) {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_slot")
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format("15:04"), nil
}
