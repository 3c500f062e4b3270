package models

// Feature is one card of the "Everything under one hood" section
type Feature struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"` // chart, bot or shield
	Details     []string `yaml:"details"`
}

// Plan is a monthly pricing tier
type Plan struct {
	Name        string   `yaml:"name"`
	Price       string   `yaml:"price"`
	Features    []string `yaml:"features"`
	CTA         string   `yaml:"cta"`
	Highlighted bool     `yaml:"highlighted"`
}

// Problem is a card of "The High Cost of Chaos" grid
type Problem struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
	Icon  string `yaml:"icon"`
}

// Step is a "How It Works" stage
type Step struct {
	Step    string   `yaml:"step"`
	Title   string   `yaml:"title"`
	Desc    string   `yaml:"desc"`
	Bullets []string `yaml:"bullets"`
}

type FAQ struct {
	Question string `yaml:"q"`
	Answer   string `yaml:"a"`
}

// ChatMessage is one bubble of the phone-agent demo conversation
type ChatMessage struct {
	Text   string `yaml:"text"`
	Sender string `yaml:"sender"`
	Bot    bool   `yaml:"bot"`
}

// ValueCard is a short title/description pair shown above the lead form
type ValueCard struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

// ReorderItem is a row of the live reorder priority demo
type ReorderItem struct {
	Name   string `yaml:"name"`
	Stock  string `yaml:"stock"`
	Action string `yaml:"action"`
}

// SalesPoint is one sample of the dashboard preview: POS sales against the
// amount the bank settled for the same slot.
type SalesPoint struct {
	Name    string  `yaml:"name"`
	Sales   float64 `yaml:"sales"`
	Deposit float64 `yaml:"deposit"`
}

// Dashboard holds the canned figures of the hero dashboard preview
type Dashboard struct {
	TotalSalesToday string       `yaml:"total_sales_today"`
	SalesTrend      string       `yaml:"sales_trend"`
	InventoryHealth string       `yaml:"inventory_health"`
	InventoryLevel  int          `yaml:"inventory_level"` // percent
	ReorderNote     string       `yaml:"reorder_note"`
	Series          []SalesPoint `yaml:"series"`
}

// Hero is the above-the-fold copy
type Hero struct {
	Badge        string `yaml:"badge"`
	Headline     string `yaml:"headline"` // may contain sanitized inline markup
	Subline      string `yaml:"subline"`
	PrimaryCTA   string `yaml:"primary_cta"`
	SecondaryCTA string `yaml:"secondary_cta"`
}

// Landing is the complete content catalog of the marketing page
type Landing struct {
	Brand      string        `yaml:"brand"`
	Tagline    string        `yaml:"tagline"`
	Hero       Hero          `yaml:"hero"`
	Problems   []Problem     `yaml:"problems"`
	Tags       []string      `yaml:"tags"`
	Reorders   []ReorderItem `yaml:"reorders"`
	Steps      []Step        `yaml:"steps"`
	Features   []Feature     `yaml:"features"`
	Chat       []ChatMessage `yaml:"chat"`
	Segments   []string      `yaml:"segments"`
	POSBrands  []string      `yaml:"pos_brands"`
	Plans      []Plan        `yaml:"plans"`
	FAQs       []FAQ         `yaml:"faqs"`
	ValueCards []ValueCard   `yaml:"value_cards"`
	Dashboard  Dashboard     `yaml:"dashboard"`
}
