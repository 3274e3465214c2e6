package models

// Bonus is a single promotional offer as served by GET /bonuses.
type Bonus struct {
	ID           string   `json:"id"`
	BrandName    string   `json:"brandName"`
	Logo         string   `json:"logo"`
	WelcomeBonus string   `json:"welcomeBonus"`
	BonusDetails string   `json:"bonusDetails"`
	Wager        string   `json:"wager"`
	MinDeposit   string   `json:"minDeposit"`
	TrackingLink string   `json:"trackingLink"`
	Tags         []string `json:"tags"`
	Type         *string  `json:"type"` // null when the source has no type
}
