package domain

import "time"

// Priority represents task priority level
type Priority string

const (
	PriorityUrgent Priority = "urgente"
	PriorityHigh   Priority = "alta"
	PriorityMedium Priority = "media"
	PriorityLow    Priority = "baixa"
)

// Priorities lists all priority levels in canonical order (most urgent first),
// used by breakdowns that must emit one zero-filled entry per level.
var Priorities = []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}

var priorityLabels = map[Priority]string{
	PriorityUrgent: "Urgente",
	PriorityHigh:   "Alta",
	PriorityMedium: "Média",
	PriorityLow:    "Baixa",
}

func (p Priority) Label() string {
	if l, ok := priorityLabels[p]; ok {
		return l
	}
	return string(p)
}

func (p Priority) Valid() bool {
	_, ok := priorityLabels[p]
	return ok
}

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	StatusPending    TaskStatus = "pendente"
	StatusInProgress TaskStatus = "em_andamento"
	StatusDone       TaskStatus = "concluida"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

var statusLabels = map[TaskStatus]string{
	StatusPending:    "Pendente",
	StatusInProgress: "Em andamento",
	StatusDone:       "Concluída",
}

func (s TaskStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// DayOfWeek is the partition key for the weekly board.
type DayOfWeek string

const (
	Monday    DayOfWeek = "segunda"
	Tuesday   DayOfWeek = "terca"
	Wednesday DayOfWeek = "quarta"
	Thursday  DayOfWeek = "quinta"
	Friday    DayOfWeek = "sexta"
	Saturday  DayOfWeek = "sabado"
	Sunday    DayOfWeek = "domingo"
)

// WeekDays lists all days in canonical order (Monday first).
var WeekDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

type dayInfo struct {
	label string
	short string
}

var dayInfos = map[DayOfWeek]dayInfo{
	Monday:    {"Segunda-feira", "SEG"},
	Tuesday:   {"Terça-feira", "TER"},
	Wednesday: {"Quarta-feira", "QUA"},
	Thursday:  {"Quinta-feira", "QUI"},
	Friday:    {"Sexta-feira", "SEX"},
	Saturday:  {"Sábado", "SAB"},
	Sunday:    {"Domingo", "DOM"},
}

func (d DayOfWeek) Label() string {
	if info, ok := dayInfos[d]; ok {
		return info.label
	}
	return string(d)
}

// Short returns the three-letter abbreviation used as spreadsheet sheet name.
func (d DayOfWeek) Short() string {
	if info, ok := dayInfos[d]; ok {
		return info.short
	}
	return string(d)
}

func (d DayOfWeek) Valid() bool {
	_, ok := dayInfos[d]
	return ok
}

// Task is a recurring weekly-routine item. ID is the Firestore document ID and
// is not stored inside the document itself.
type Task struct {
	ID            string     `json:"id" firestore:"-"`
	Title         string     `json:"title" firestore:"title"`
	Description   string     `json:"description" firestore:"description"`
	DueDate       *time.Time `json:"due_date,omitempty" firestore:"due_date"`
	Priority      Priority   `json:"priority" firestore:"priority"`
	DayOfWeek     DayOfWeek  `json:"day_of_week" firestore:"day_of_week"`
	Status        TaskStatus `json:"status" firestore:"status"`
	OrderPosition int        `json:"order_position" firestore:"order_position"`
	CompletedAt   *time.Time `json:"completed_at,omitempty" firestore:"completed_at"`
	CreatedAt     time.Time  `json:"created_at" firestore:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" firestore:"updated_at"`
}

// NormalizeDueDate pins a due date to noon UTC. Due dates carry date-only
// semantics; storing them mid-day keeps the calendar day stable across
// timezone round-trips.
func NormalizeDueDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

// DueDateDisplay formats a stored due date back to its date-only form.
func DueDateDisplay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseDueDate accepts either a plain date or a full RFC3339 timestamp and
// returns the normalized stored form.
func ParseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return NormalizeDueDate(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDueDate(t.UTC()), nil
}
