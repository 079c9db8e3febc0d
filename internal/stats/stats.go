// Package stats holds the pure aggregation functions that derive summary
// values from the raw dream/goal/log collections. Nothing here touches
// storage; callers re-run these over in-memory data on every read.
package stats

import (
	"math"

	"github.com/horizonhq/horizon-api/internal/constants"
	"github.com/horizonhq/horizon-api/internal/models"
)

// StatusForProgress maps a progress percentage to its goal status.
// Progress and status are never written independently; every progress
// write goes through this function.
func StatusForProgress(progress int) models.GoalStatus {
	switch {
	case progress <= 0:
		return models.GoalStatusNotStarted
	case progress >= constants.MaxProgress:
		return models.GoalStatusCompleted
	default:
		return models.GoalStatusInProgress
	}
}

// ClampProgress bounds a progress value to [0, 100].
func ClampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > constants.MaxProgress {
		return constants.MaxProgress
	}
	return progress
}

// DreamProgress returns the rounded mean progress of the goals belonging
// to the dream, or 0 when the dream has no goals. The value is derived on
// every call and never persisted, so it cannot drift from its goals.
func DreamProgress(dream models.Dream, goals []models.Goal) int {
	sum, count := 0, 0
	for _, g := range goals {
		if g.DreamID == dream.ID {
			sum += g.Progress
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return roundHalfUp(float64(sum) / float64(count))
}

// Summary is the dashboard rollup over all of a user's data.
type Summary struct {
	ActiveDreams    int `json:"activeDreams"`
	NotStartedGoals int `json:"notStartedGoals"`
	InProgressGoals int `json:"inProgressGoals"`
	CompletedGoals  int `json:"completedGoals"`
	AverageProgress int `json:"averageProgress"`
}

// Summarize computes the dashboard counters: non-archived dream count,
// goal counts by status, and the rounded mean progress across all goals
// (0 when there are none).
func Summarize(dreams []models.Dream, goals []models.Goal) Summary {
	var s Summary
	for _, d := range dreams {
		if !d.IsArchived {
			s.ActiveDreams++
		}
	}

	sum := 0
	for _, g := range goals {
		switch g.Status {
		case models.GoalStatusCompleted:
			s.CompletedGoals++
		case models.GoalStatusInProgress:
			s.InProgressGoals++
		default:
			s.NotStartedGoals++
		}
		sum += g.Progress
	}
	if len(goals) > 0 {
		s.AverageProgress = roundHalfUp(float64(sum) / float64(len(goals)))
	}
	return s
}

// RecentLogs returns the first n logs. The slice is assumed pre-sorted by
// date descending per the gateway contract; no re-sort happens here.
func RecentLogs(logs []models.ActionLog, n int) []models.ActionLog {
	if n <= 0 {
		return []models.ActionLog{}
	}
	if n > len(logs) {
		n = len(logs)
	}
	return logs[:n]
}

// RecentDreams returns the first n non-archived dreams in gateway order.
func RecentDreams(dreams []models.Dream, n int) []models.Dream {
	if n <= 0 {
		return []models.Dream{}
	}
	out := make([]models.Dream, 0, n)
	for _, d := range dreams {
		if d.IsArchived {
			continue
		}
		out = append(out, d)
		if len(out) == n {
			break
		}
	}
	return out
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
