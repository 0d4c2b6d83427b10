package reports

import (
	"sort"
	"time"

	"github.com/linesmerrill/casa-court-report/models"
)

// MilestoneCutoff returns the latest court date strictly before now. Court
// dates still in the future never act as a cutoff.
func MilestoneCutoff(courtDates []time.Time, now time.Time) (time.Time, bool) {
	var cutoff time.Time
	found := false
	for _, d := range courtDates {
		if !d.Before(now) {
			continue
		}
		if !found || d.After(cutoff) {
			cutoff = d
			found = true
		}
	}
	return cutoff, found
}

// ContactWindow picks the contacts logged since the last court date, oldest
// first. Without a past court date the whole history is returned.
func ContactWindow(courtDates []time.Time, contacts []models.CaseContact, now time.Time) []models.CaseContact {
	cutoff, hasCutoff := MilestoneCutoff(courtDates, now)

	window := make([]models.CaseContact, 0, len(contacts))
	for _, c := range contacts {
		if hasCutoff && c.Details.OccurredAt.Time().Before(cutoff) {
			continue
		}
		window = append(window, c)
	}

	sort.SliceStable(window, func(i, j int) bool {
		return window[i].Details.OccurredAt < window[j].Details.OccurredAt
	})
	return window
}
