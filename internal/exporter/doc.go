// Package exporter writes the pipeline outputs.
//
// CSVWriter stages each table next to its destination and renames it into
// place once fully written. PipelineExporter maps each pipeline result to its
// file under config.Paths:
//
//	cleaned_volcano_data.csv  source columns + eruption_date + week
//	cleaned_spotify_data.csv  source columns + week_date + week_period + primary_genre
//	weekly_volcano.csv        period, eruption_count, avg_vei, max_vei
//	weekly_spotify.csv        period, total_streams, track_count, top_genre
//	merged_dataset.csv        both weekly tables joined on period
//	summary.json              descriptive statistics for the dashboard
//	merged_dataset.xlsx       merged table and summary as a workbook
//
// CSV output carries no byte-order mark or timestamps and floats use
// dataprocessing.FormatFloat, so the same inputs always produce
// byte-identical tables.
package exporter
