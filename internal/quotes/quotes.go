package quotes

import "time"

// Quote is one motivational line shown on the habits view.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Text: "Success is the sum of small efforts repeated day in and day out.", Author: "Robert Collier"},
	{Text: "We are what we repeatedly do. Excellence, then, is not an act, but a habit.", Author: "Aristotle"},
	{Text: "The journey of a thousand miles begins with one step.", Author: "Lao Tzu"},
	{Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
	{Text: "Motivation is what gets you started. Habit is what keeps you going.", Author: "Jim Ryun"},
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Text: "Small progress is still progress.", Author: "Anonymous"},
}

// OfTheDay rotates through the list once per calendar day. Same day, same
// quote; no hidden state between calls.
func OfTheDay(today time.Time) Quote {
	day := today.Year()*366 + today.YearDay()
	return quotes[day%len(quotes)]
}
