package usecase

import (
	"math"
	"time"

	"github.com/LaryssaGabi/RotinaOdonto/internal/task/domain"
)

// WeeklyStats partitions a task collection by status.
type WeeklyStats struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
	Total      int `json:"total"`
}

// DailyStat counts one weekday's tasks.
type DailyStat struct {
	Day       string `json:"day"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// PriorityStat counts one priority level's tasks.
type PriorityStat struct {
	Priority  string `json:"priority"`
	Count     int    `json:"count"`
	Completed int    `json:"completed"`
}

// ComputeWeeklyStats counts tasks per status.
func ComputeWeeklyStats(tasks []*domain.Task) WeeklyStats {
	stats := WeeklyStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusDone:
			stats.Completed++
		case domain.StatusInProgress:
			stats.InProgress++
		case domain.StatusPending:
			stats.Pending++
		}
	}
	return stats
}

// ComputeDailyBreakdown returns exactly one entry per canonical weekday,
// zero-filled for days without tasks.
func ComputeDailyBreakdown(tasks []*domain.Task) []DailyStat {
	daily := make([]DailyStat, 0, len(domain.WeekDays))
	for _, day := range domain.WeekDays {
		stat := DailyStat{Day: day.Short()}
		for _, t := range tasks {
			if t.DayOfWeek != day {
				continue
			}
			stat.Total++
			if t.Status == domain.StatusDone {
				stat.Completed++
			}
		}
		daily = append(daily, stat)
	}
	return daily
}

// ComputePriorityBreakdown returns one entry per priority level in canonical
// order (most urgent first), zero-filled.
func ComputePriorityBreakdown(tasks []*domain.Task) []PriorityStat {
	breakdown := make([]PriorityStat, 0, len(domain.Priorities))
	for _, p := range domain.Priorities {
		stat := PriorityStat{Priority: p.Label()}
		for _, t := range tasks {
			if t.Priority != p {
				continue
			}
			stat.Count++
			if t.Status == domain.StatusDone {
				stat.Completed++
			}
		}
		breakdown = append(breakdown, stat)
	}
	return breakdown
}

// CompletionRate is the rounded percentage of completed tasks; 0 for an empty
// collection.
func CompletionRate(stats WeeklyStats) int {
	if stats.Total == 0 {
		return 0
	}
	return int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
}

// WeekWindow returns [start, end) of the calendar week containing now, shifted
// back weeksAgo weeks. Weeks start on Sunday at 00:00 local time, matching the
// statistics and reports views.
func WeekWindow(now time.Time, weeksAgo int) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = start.AddDate(0, 0, -int(now.Weekday())-weeksAgo*7)
	return start, start.AddDate(0, 0, 7)
}
