package scheduling

import "time"

// Janela de funcionamento e grade de slots das lojas.
const (
	DayStartHour    = 9
	DayEndHour      = 18
	SlotIntervalMin = 30
)

// Window é um intervalo ocupado por um agendamento existente.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Overlaps(start, end time.Time) bool {
	return start.Before(w.End) && end.After(w.Start)
}

// ComputeSlots monta a lista de horários "HH:MM" livres para um dia.
// day deve ser a meia-noite da data desejada no fuso da loja. Slots cujo
// número de agendamentos sobrepostos alcança a capacidade ficam de fora;
// slots que terminariam depois do fechamento também.
func ComputeSlots(day time.Time, durationMin, capacity int, busy []Window) []string {
	if durationMin <= 0 {
		durationMin = SlotIntervalMin
	}

	dayEnd := day.Add(DayEndHour * time.Hour)
	cursor := day.Add(DayStartHour * time.Hour)

	slots := []string{}
	for cursor.Before(dayEnd) {
		slotStart := cursor
		slotEnd := cursor.Add(time.Duration(durationMin) * time.Minute)
		if slotEnd.After(dayEnd) {
			break
		}

		conflicts := 0
		for _, w := range busy {
			if w.Overlaps(slotStart, slotEnd) {
				conflicts++
			}
		}

		if conflicts < capacity {
			slots = append(slots, slotStart.Format("15:04"))
		}

		cursor = cursor.Add(SlotIntervalMin * time.Minute)
	}

	return slots
}
