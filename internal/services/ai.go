package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/horizonhq/horizon-api/internal/constants"
	"github.com/horizonhq/horizon-api/internal/models"
)

// MentorService suggests concrete goals for a dream using OpenAI GPT.
type MentorService struct {
	client *openai.Client
}

// SuggestedGoal is one AI-proposed step toward a dream.
type SuggestedGoal struct {
	Title string `json:"title"`
}

func NewMentorService(apiKey string) *MentorService {
	return &MentorService{
		client: openai.NewClient(apiKey),
	}
}

// SuggestGoals proposes measurable goals for the given dream.
func (s *MentorService) SuggestGoals(ctx context.Context, dream models.Dream) ([]SuggestedGoal, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`You are a goal-setting mentor. A user has a long-term dream and needs it broken down into measurable steps.

Dream: %s
Description: %s
Category: %s
Time horizon: %s

Return a JSON array of 3 to 5 concrete, measurable goals toward this dream:
[
  {"title": "short actionable goal title"}
]

Rules:
- Each goal must be independently completable and verifiable
- Return only JSON, no surrounding text`,
		dream.Title, dream.Description, dream.Category, dream.Horizon)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.4,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := resp.Choices[0].Message.Content

	var suggestions []SuggestedGoal
	if err := json.Unmarshal([]byte(content), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	valid := make([]SuggestedGoal, 0, len(suggestions))
	for _, g := range suggestions {
		if strings.TrimSpace(g.Title) == "" {
			continue
		}
		valid = append(valid, g)
		if len(valid) == constants.MaxSuggestedGoals {
			break
		}
	}

	return valid, nil
}
