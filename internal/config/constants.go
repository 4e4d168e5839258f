package config

import "vsdash/pkg/contracts"

// Application constants
const (
	AppName    = "vsdash"
	AppVersion = contracts.Version
)

// Output file names, relative to the pipeline output directory.
const (
	CleanedVolcanoFile = "cleaned_volcano_data.csv"
	CleanedSpotifyFile = "cleaned_spotify_data.csv"
	WeeklyVolcanoFile  = "weekly_volcano.csv"
	WeeklySpotifyFile  = "weekly_spotify.csv"
	MergedFile         = "merged_dataset.csv"
	MergedWorkbookFile = "merged_dataset.xlsx"
	SummaryFile        = "summary.json"
)

// DashboardFiles must exist in the dashboard directory before serving.
var DashboardFiles = []string{"index.html", "styles.css", "dashboard.js"}
