package domain

// RoundsPerDay is the number of products in a daily set
const RoundsPerDay = 5

// DailySet is the ordered, date-deterministic product list shown to
// every player on a given day. Exactly RoundsPerDay unique products.
type DailySet struct {
	Date     string    `json:"date"`
	Country  string    `json:"country"`
	Products []Product `json:"products"`
}

// GuessRequest is a single price guess against a revealed product price
type GuessRequest struct {
	Guess       float64 `json:"guess" binding:"gte=0"`
	ActualPrice float64 `json:"actualPrice" binding:"required,gt=0"`
}

// GuessResult is the scored outcome of one guess
type GuessResult struct {
	Accuracy float64 `json:"accuracy"`
	Message  string  `json:"message"`
	Emoji    string  `json:"emoji"`
}

// Progress is the client-owned record of a day's play. The server never
// stores it; it only consumes one to compose share text.
type Progress struct {
	Date         string    `json:"date"`
	CurrentRound int       `json:"currentRound"`
	Scores       []float64 `json:"scores"`
	Completed    bool      `json:"completed"`
}

// ShareRequest asks for a plain-text share summary of a finished day
type ShareRequest struct {
	Progress Progress `json:"progress" binding:"required"`
	Origin   string   `json:"origin"`
}
