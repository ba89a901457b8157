package libraryserver

import (
	"context"
	"fmt"
	"time"

	"video-library/internal/models"
	"video-library/shared/logging"
	"video-library/shared/metrics"
	"video-library/shared/scheduler"
)

// StatsSource is implemented by storage.VideoStore.
type StatsSource interface {
	Stats(now time.Time) models.LibraryStats
}

// LibraryMetrics is the result of one stats run.
type LibraryMetrics struct {
	Stats models.LibraryStats
}

// GetSummary implements the scheduler.Metrics interface
func (m LibraryMetrics) GetSummary() string {
	return fmt.Sprintf("%d videos, %d views, %d distinct tags", m.Stats.Total, m.Stats.TotalViews, m.Stats.TagCount)
}

// StatsJob periodically reports library statistics to the log and metrics.
type StatsJob struct {
	source StatsSource
	now    func() time.Time
}

func NewStatsJob(source StatsSource) *StatsJob {
	return &StatsJob{source: source, now: time.Now}
}

func (j *StatsJob) Name() string {
	return "Library Stats"
}

func (j *StatsJob) RunOnce(ctx context.Context) (scheduler.Metrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := j.source.Stats(j.now())
	metrics.SetVideoCount(stats.Total)

	l := logging.WithComponent("stats")
	evt := l.Info().Int("videos", stats.Total).Int("views", stats.TotalViews).Int("tags", stats.TagCount)
	if stats.Newest != nil {
		evt = evt.Str("newest", stats.Newest.Title)
	}
	evt.Msg("library stats")

	return LibraryMetrics{Stats: stats}, nil
}
