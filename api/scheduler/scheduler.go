package scheduler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/linesmerrill/casa-court-report/logging"
)

// pruneSchedule is how often generated reports are swept
const pruneSchedule = "@every 1h"

// Scheduler handles periodic background jobs for generated court reports
type Scheduler struct {
	cron      *cron.Cron
	OutputDir string
	Retention time.Duration
	// Now defaults to time.Now
	Now func() time.Time
	log *zap.SugaredLogger
}

// NewScheduler creates a new scheduler instance
func NewScheduler(outputDir string, retention time.Duration) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		OutputDir: outputDir,
		Retention: retention,
		log:       logging.Named("scheduler"),
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() error {
	// Generated reports are only kept around long enough to be downloaded
	_, err := s.cron.AddFunc(pruneSchedule, s.pruneReports)
	if err != nil {
		s.log.Errorw("failed to register report pruning job", "error", err)
		return err
	}

	s.cron.Start()
	s.log.Infow("Report scheduler started",
		"outputDir", s.OutputDir,
		"retention", s.Retention)
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Report scheduler stopped")
}

func (s *Scheduler) pruneReports() {
	removed, err := s.PruneReports()
	if err != nil {
		s.log.Errorw("failed to prune generated reports", "error", err)
		return
	}
	s.log.Infow("Report pruning complete", "removed", removed)
}

// PruneReports deletes reports in the output directory that are older than
// the retention period, along with temp files left by interrupted renders. A
// missing output directory has nothing to prune.
func (s *Scheduler) PruneReports() (int, error) {
	if s.Retention <= 0 {
		return 0, nil
	}

	entries, err := os.ReadDir(s.OutputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read %s: %w", s.OutputDir, err)
	}

	cutoff := s.now().Add(-s.Retention)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !isReportFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed by someone else between ReadDir and Info
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		path := filepath.Join(s.OutputDir, entry.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.log.Warnw("failed to remove expired report", "path", path, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}

// isReportFile matches finished reports and the temp files they are written
// through before being renamed into place
func isReportFile(name string) bool {
	if strings.HasSuffix(name, ".docx") {
		return true
	}
	return strings.HasPrefix(name, ".report-") && strings.HasSuffix(name, ".tmp")
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
