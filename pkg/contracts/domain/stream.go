package domain

import "time"

// UnknownGenre is the category used for absent genres and unmatched weeks.
const UnknownGenre = "unknown"

// RawStreamRecord is one row of the streaming chart source as read from disk.
type RawStreamRecord struct {
	Line         int
	Week         string
	Streams      string
	TrackID      string
	ArtistGenres string

	// Fields holds every source column in header order.
	Fields []string
}

// CleanStreamRecord is a raw record with a parsed week date.
type CleanStreamRecord struct {
	Raw          RawStreamRecord
	WeekDate     time.Time
	Period       WeekPeriod
	Streams      int64
	PrimaryGenre string
}

// WeeklyStreamAggregate is one week of chart activity.
type WeeklyStreamAggregate struct {
	Period       WeekPeriod `json:"period"`
	TotalStreams int64      `json:"total_streams"`
	TrackCount   int        `json:"track_count"`
	TopGenre     string     `json:"top_genre"`
}
