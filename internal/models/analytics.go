package models

import "time"

// AnalyticsOverview summarizes betting performance across all time.
type AnalyticsOverview struct {
	TotalBets    int     `json:"totalBets"`
	TotalWagered float64 `json:"totalWagered"`
	TotalProfit  float64 `json:"totalProfit"`
	WinRate      float64 `json:"winRate"`
	ROI          float64 `json:"roi"`
	BestSport    string  `json:"bestSport,omitempty"`
	WorstSport   string  `json:"worstSport,omitempty"`
}

// TrendPoint is one day of the betting trends series.
type TrendPoint struct {
	Date     time.Time `json:"date"`
	BetCount int       `json:"betCount"`
	Wagered  float64   `json:"wagered"`
	Profit   float64   `json:"profit"`
}

// SportStat is the per-sport slice of the breakdown report.
type SportStat struct {
	Sport   string  `json:"sport"`
	Bets    int     `json:"bets"`
	Wagered float64 `json:"wagered"`
	Profit  float64 `json:"profit"`
	WinRate float64 `json:"winRate"`
}

// Insight is a single AI-generated observation about betting behavior.
type Insight struct {
	Title      string  `json:"title"`
	Body       string  `json:"body"`
	Category   string  `json:"category,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// InsightReport groups AI-derived insights with their generation time, which
// callers use to judge staleness of cached copies.
type InsightReport struct {
	Insights    []Insight `json:"insights"`
	GeneratedAt time.Time `json:"generatedAt"`
}
