package model

import "strings"

// AuditoriumName is the one room allowed to hold two exams per shift.
const AuditoriumName = "AULA"

// Room is one entry of the campus room roster.
type Room struct {
	Name string `csv:"RUANGAN"`
}

func (r *Room) IsAuditorium() bool {
	return IsAuditorium(r.Name)
}

// IsAuditorium matches the distinguished room by exact case-insensitive name.
func IsAuditorium(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), AuditoriumName)
}
