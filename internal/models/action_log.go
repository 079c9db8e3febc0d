package models

// ActionLog is a dated free-text journal entry. Date is the user-intended
// time of the action (epoch millis) and may be earlier than CreatedAt to
// allow back-dating. Log collections are always read sorted by Date
// descending.
type ActionLog struct {
	ID        string `json:"id" bson:"_id"`
	UserID    string `json:"userId" bson:"userId"`
	Content   string `json:"content" bson:"content"`
	Date      int64  `json:"date" bson:"date"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}
