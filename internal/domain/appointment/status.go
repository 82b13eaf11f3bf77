package appointment

import "strings"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// legacy vocabulary still sent by older clients
var aliases = map[string]Status{
	"scheduled": StatusScheduled,
	"completed": StatusCompleted,
	"cancelled": StatusCancelled,
	"agendada":  StatusScheduled,
	"concluida": StatusCompleted,
	"cancelada": StatusCancelled,
}

// ===============================
// Parsing
// ===============================

// ParseStatus normalizes raw (case and surrounding spaces ignored) to a
// canonical status. Empty input yields the initial status.
func ParseStatus(raw string) (Status, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return InitialStatus(), true
	}

	s, ok := aliases[key]
	return s, ok
}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusScheduled
}
