package domain

import "time"

// RawEruptionRecord is one row of the eruption source as read from disk.
// Date parts and VEI stay as text; coercion happens in the aggregator.
type RawEruptionRecord struct {
	Line           int
	EruptionNumber string
	StartYear      string
	StartMonth     string
	StartDay       string
	VEI            string

	// Fields holds every source column in header order.
	Fields []string
}

// CleanEruptionRecord is a raw record that survived normalization.
type CleanEruptionRecord struct {
	Raw    RawEruptionRecord
	Year   int
	Month  int
	Day    int
	VEI    float64
	Date   time.Time
	Period WeekPeriod
}

// WeeklyVolcanoAggregate is one week of eruption activity.
type WeeklyVolcanoAggregate struct {
	Period        WeekPeriod `json:"period"`
	EruptionCount int        `json:"eruption_count"`
	AvgVEI        float64    `json:"avg_vei"`
	MaxVEI        float64    `json:"max_vei"`
}
