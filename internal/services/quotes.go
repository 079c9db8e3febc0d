package services

import "math/rand"

// Quote is a motivational quote shown on the welcome and discovery views.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{Text: "We suffer more often in imagination than in reality.", Author: "Seneca"},
	{Text: "The man who moves a mountain begins by carrying away small stones.", Author: "Confucius"},
	{Text: "Your direction is more important than your speed.", Author: "Anonymous"},
	{Text: "You do not rise to the level of your goals. You fall to the level of your systems.", Author: "James Clear"},
	{Text: "The best time to plant a tree was 20 years ago. The second best time is now.", Author: "Chinese Proverb"},
	{Text: "Great things are not done by impulse, but by a series of small things brought together.", Author: "Vincent van Gogh"},
	{Text: "Discipline is choosing between what you want now and what you want most.", Author: "Abraham Lincoln"},
}

// RandomQuote returns one of the built-in quotes.
func RandomQuote() Quote {
	return quotes[rand.Intn(len(quotes))]
}
