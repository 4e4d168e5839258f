package config

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains every file the pipeline reads or writes.
// This is the single place output names are joined to directories.
type Paths struct {
	DataDir   string
	OutputDir string

	EruptionsSource string
	StreamsSource   string

	CleanedVolcanoCSV string
	CleanedSpotifyCSV string
	WeeklyVolcanoCSV  string
	WeeklySpotifyCSV  string
	MergedCSV         string
	MergedWorkbook    string
	SummaryJSON       string
}

// NewPaths resolves the pipeline paths from configuration. Relative source
// file names are joined to DataDir; absolute ones are kept as-is.
func NewPaths(cfg PipelineConfig) *Paths {
	out := cfg.OutputDir
	return &Paths{
		DataDir:           cfg.DataDir,
		OutputDir:         out,
		EruptionsSource:   resolve(cfg.DataDir, cfg.EruptionsFile),
		StreamsSource:     resolve(cfg.DataDir, cfg.StreamsFile),
		CleanedVolcanoCSV: filepath.Join(out, CleanedVolcanoFile),
		CleanedSpotifyCSV: filepath.Join(out, CleanedSpotifyFile),
		WeeklyVolcanoCSV:  filepath.Join(out, WeeklyVolcanoFile),
		WeeklySpotifyCSV:  filepath.Join(out, WeeklySpotifyFile),
		MergedCSV:         filepath.Join(out, MergedFile),
		MergedWorkbook:    filepath.Join(out, MergedWorkbookFile),
		SummaryJSON:       filepath.Join(out, SummaryFile),
	}
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// MissingFiles returns the names in files that do not exist under dir.
func MissingFiles(dir string, files []string) []string {
	var missing []string
	for _, name := range files {
		if !FileExists(filepath.Join(dir, name)) {
			missing = append(missing, name)
		}
	}
	return missing
}

// LogPathResolution logs detailed path resolution information for debugging
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("Path resolution summary",
		slog.Group("sources",
			slog.String("eruptions", p.EruptionsSource),
			slog.String("streams", p.StreamsSource),
		),
		slog.Group("outputs",
			slog.String("dir", p.OutputDir),
			slog.String("cleaned_volcano", p.CleanedVolcanoCSV),
			slog.String("cleaned_spotify", p.CleanedSpotifyCSV),
			slog.String("weekly_volcano", p.WeeklyVolcanoCSV),
			slog.String("weekly_spotify", p.WeeklySpotifyCSV),
			slog.String("merged", p.MergedCSV),
			slog.String("summary", p.SummaryJSON),
		))
}
