package dataprocessing

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"vsdash/pkg/contracts/domain"
)

// Summarize computes descriptive statistics over the merged table. Means and
// maxima are 0 for an empty table and the genre falls back to domain.NoGenre.
func Summarize(rows []domain.MergedWeeklyRow) domain.Summary {
	s := domain.Summary{
		TotalPeriods:    len(rows),
		MostCommonGenre: domain.NoGenre,
	}
	if len(rows) == 0 {
		return s
	}

	var veiSum, streamSum float64
	genres := newModeCounter()
	for i, r := range rows {
		if r.HasEruptions() {
			s.PeriodsWithEruptions++
		}
		s.TotalEruptions += r.EruptionCount
		veiSum += r.AvgVEI
		if i == 0 || r.MaxVEI > s.MaxVEI {
			s.MaxVEI = r.MaxVEI
		}
		s.TotalStreams += r.TotalStreams
		streamSum += float64(r.TotalStreams)
		genres.Add(r.TopGenre)
	}

	n := float64(len(rows))
	s.MeanAvgVEI = veiSum / n
	s.MeanWeeklyStreams = streamSum / n
	s.MostCommonGenre = genres.Mode(domain.NoGenre)
	return s
}

// WriteSummary renders s as the human-readable console block.
func WriteSummary(w io.Writer, s domain.Summary) error {
	p := message.NewPrinter(language.English)
	lines := []string{
		"=== SUMMARY STATISTICS ===",
		fmt.Sprintf("Total weeks analyzed: %d", s.TotalPeriods),
		fmt.Sprintf("Weeks with volcano activity: %d", s.PeriodsWithEruptions),
		fmt.Sprintf("Total eruptions: %d", s.TotalEruptions),
		fmt.Sprintf("Average VEI: %.2f", s.MeanAvgVEI),
		fmt.Sprintf("Max VEI recorded: %s", FormatFloat(s.MaxVEI)),
		p.Sprintf("Total streams: %d", s.TotalStreams),
		p.Sprintf("Average weekly streams: %.0f", s.MeanWeeklyStreams),
		fmt.Sprintf("Most common genre: %s", s.MostCommonGenre),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
