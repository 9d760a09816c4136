package jobclient

import (
	"context"
	"errors"
	"sync"

	"go-jobboard-backend/internal/domain"
)

// ErrSuperseded is returned by LatestFetcher.Fetch when a newer Fetch
// started before this one finished.
var ErrSuperseded = errors.New("jobclient: superseded by a newer request")

// LatestFetcher issues listing requests as filters change and only lets the
// most recent one win. Starting a new Fetch cancels the one in flight.
type LatestFetcher struct {
	client *Client

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func NewLatestFetcher(client *Client) *LatestFetcher {
	return &LatestFetcher{client: client}
}

// Fetch lists jobs for f. Results of a call that was overtaken by a later
// call are discarded and ErrSuperseded is returned instead.
func (l *LatestFetcher) Fetch(ctx context.Context, f Filters) ([]domain.Job, error) {
	ctx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	mine := l.seq
	l.cancel = cancel
	l.mu.Unlock()

	jobs, err := l.client.ListJobs(ctx, f)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.seq != mine {
		cancel()
		return nil, ErrSuperseded
	}
	l.cancel = nil
	cancel()
	return jobs, err
}

// Stop cancels the request in flight, if any.
func (l *LatestFetcher) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.seq++
}
