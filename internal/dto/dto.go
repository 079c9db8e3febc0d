package dto

import (
	"github.com/horizonhq/horizon-api/internal/models"
	"github.com/horizonhq/horizon-api/internal/stats"
)

// UserDTO represents a user in API responses.
type UserDTO struct {
	UID         string             `json:"uid"`
	Email       *string            `json:"email"`
	DisplayName string             `json:"displayName"`
	PhotoURL    string             `json:"photoURL,omitempty"`
	AccountType models.AccountType `json:"accountType"`
	CreatedAt   int64              `json:"createdAt"`
}

// ToUserDTO converts a User model to UserDTO.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		UID:         user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
		AccountType: user.AccountType,
		CreatedAt:   user.CreatedAt,
	}
}

// DreamDTO is a dream plus its derived progress. Progress is computed
// from the dream's goals on every response and never stored.
type DreamDTO struct {
	models.Dream
	Progress int `json:"progress"`
}

// ToDreamDTO pairs a dream with its derived progress.
func ToDreamDTO(dream models.Dream, goals []models.Goal) DreamDTO {
	return DreamDTO{
		Dream:    dream,
		Progress: stats.DreamProgress(dream, goals),
	}
}

// ToDreamDTOs converts a dream collection, deriving each progress from
// the full goal collection.
func ToDreamDTOs(dreams []models.Dream, goals []models.Goal) []DreamDTO {
	out := make([]DreamDTO, len(dreams))
	for i, d := range dreams {
		out[i] = ToDreamDTO(d, goals)
	}
	return out
}

// DashboardDTO is the dashboard summary response.
type DashboardDTO struct {
	Stats       stats.Summary      `json:"stats"`
	RecentLogs  []models.ActionLog `json:"recentLogs"`
	DreamHealth []DreamDTO         `json:"dreamHealth"`
}
