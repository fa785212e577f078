package display

import (
	"context"
	"sync"

	"github.com/jobcrawler/internal/models"
	"github.com/sirupsen/logrus"
)

// FailureMessage is shown for every failed fetch, whatever the cause.
const FailureMessage = "Failed to load jobs. Check the log for details."

type JobsClient interface {
	GetJobs(ctx context.Context, source, title, city string) ([]models.Job, error)
}

type View interface {
	Render(jobs []models.Job) error
}

type Notifier interface {
	Notify(message string)
}

// Board holds the most recently fetched job list and forwards it to a view.
type Board struct {
	client   JobsClient
	view     View
	notifier Notifier
	logger   *logrus.Logger

	mu      sync.Mutex
	jobs    []models.Job
	started uint64 // sequence of the latest FetchJobs call
	applied uint64 // sequence of the call whose result is held
}

func NewBoard(client JobsClient, view View, notifier Notifier, logger *logrus.Logger) *Board {
	return &Board{
		client:   client,
		view:     view,
		notifier: notifier,
		logger:   logger,
		jobs:     []models.Job{},
	}
}

// FetchJobs replaces the held list with the jobs matching search and renders
// it. On failure the held list is left as it was.
//
// A result is dropped when a call started later has already been applied.
func (b *Board) FetchJobs(ctx context.Context, search models.SearchQuery) error {
	b.mu.Lock()
	b.started++
	seq := b.started
	b.mu.Unlock()

	log := b.logger.WithFields(logrus.Fields{
		"source": search.Source,
		"title":  search.Title,
		"city":   search.City,
		"seq":    seq,
	})
	log.Debug("Fetching jobs")

	jobs, err := b.client.GetJobs(ctx, search.Source, search.Title, search.City)
	if err != nil {
		log.WithError(err).Error("Failed to load jobs")
		b.notifier.Notify(FailureMessage)
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if seq < b.applied {
		log.WithField("applied", b.applied).Debug("Dropping stale jobs response")
		return nil
	}

	b.jobs = jobs
	b.applied = seq
	log.WithField("count", len(jobs)).Info("Jobs loaded")

	return b.view.Render(b.snapshot())
}

// Jobs returns a copy of the held list.
func (b *Board) Jobs() []models.Job {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot()
}

func (b *Board) snapshot() []models.Job {
	jobs := make([]models.Job, len(b.jobs))
	copy(jobs, b.jobs)
	return jobs
}
