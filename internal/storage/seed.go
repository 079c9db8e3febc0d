package storage

import (
	"context"
	"time"

	"github.com/horizonhq/horizon-api/internal/models"
)

// SeedDemoData populates a store with a demo account and a small set of
// dreams, goals and logs. Used by the in-memory backend so a fresh
// process has something to show.
func SeedDemoData(ctx context.Context, s Store) (string, error) {
	email := "demo@horizon.app"
	user := &models.User{
		Email:       &email,
		DisplayName: "Demo Dreamer",
		AccountType: models.AccountTypeGuest,
	}
	userID, err := s.CreateUser(ctx, user)
	if err != nil {
		return "", err
	}

	architect := &models.Dream{
		UserID:      userID,
		Title:       "Become a Senior Software Architect",
		Description: "Lead large scale systems and influence engineering culture.",
		Category:    models.CategoryCareer,
		Horizon:     models.HorizonFiveYears,
	}
	if _, err := s.CreateDream(ctx, architect); err != nil {
		return "", err
	}

	independence := &models.Dream{
		UserID:      userID,
		Title:       "Financial Independence",
		Description: "Invest enough to cover all living expenses from passive income.",
		Category:    models.CategoryMoney,
		Horizon:     models.HorizonTenYears,
	}
	if _, err := s.CreateDream(ctx, independence); err != nil {
		return "", err
	}

	goals := []models.Goal{
		{
			DreamID:  architect.ID,
			UserID:   userID,
			Title:    "Master System Design Patterns",
			Status:   models.GoalStatusInProgress,
			Progress: 65,
		},
		{
			DreamID: architect.ID,
			UserID:  userID,
			Title:   "Speak at a Tech Conference",
			Status:  models.GoalStatusNotStarted,
		},
		{
			DreamID:  independence.ID,
			UserID:   userID,
			Title:    "Save $100k for initial investment",
			Status:   models.GoalStatusCompleted,
			Progress: 100,
		},
	}
	for i := range goals {
		if _, err := s.CreateGoal(ctx, &goals[i]); err != nil {
			return "", err
		}
	}

	yesterday := time.Now().Add(-24 * time.Hour).UnixMilli()
	logs := []models.ActionLog{
		{
			UserID:  userID,
			Content: "Read 3 chapters of Designing Data-Intensive Applications.",
		},
		{
			UserID:  userID,
			Content: "Automated the monthly investment transfer.",
			Date:    yesterday,
		},
	}
	for i := range logs {
		if _, err := s.CreateLog(ctx, &logs[i]); err != nil {
			return "", err
		}
	}

	return userID, nil
}
