package models

type GoalStatus string

const (
	GoalStatusNotStarted GoalStatus = "Not Started"
	GoalStatusInProgress GoalStatus = "In Progress"
	GoalStatusCompleted  GoalStatus = "Completed"
)

// Goal is a measurable step under exactly one dream. Status is a pure
// function of Progress (0 => Not Started, 100 => Completed, otherwise
// In Progress); the two fields are always written together.
type Goal struct {
	ID        string     `json:"id" bson:"_id"`
	DreamID   string     `json:"dreamId" bson:"dreamId"`
	UserID    string     `json:"userId" bson:"userId"`
	Title     string     `json:"title" bson:"title"`
	Status    GoalStatus `json:"status" bson:"status"`
	Progress  int        `json:"progress" bson:"progress"`
	Deadline  *int64     `json:"deadline,omitempty" bson:"deadline,omitempty"`
	CreatedAt int64      `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64      `json:"updatedAt" bson:"updatedAt"`
}
