package services

import (
	"fmt"
	"sync"

	"github.com/SscSPs/agency_backoffice/internal/core/finance"
)

// SubmissionGuard allows one outstanding write submission per project.
// A second submission for the same project is rejected, not queued.
type SubmissionGuard struct {
	mu       sync.Mutex
	inFlight map[string]string
}

// NewSubmissionGuard creates an empty guard.
func NewSubmissionGuard() *SubmissionGuard {
	return &SubmissionGuard{inFlight: make(map[string]string)}
}

// Acquire marks projectID as busy with operation. The returned release func
// must be called once the submission finished, whether it failed or not.
func (g *SubmissionGuard) Acquire(projectID, operation string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if running, busy := g.inFlight[projectID]; busy {
		return nil, fmt.Errorf("project %s is busy with %s: %w", projectID, running, finance.ErrSubmissionInProgress)
	}
	g.inFlight[projectID] = operation

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inFlight, projectID)
			g.mu.Unlock()
		})
	}, nil
}

// Busy reports whether a submission for projectID is outstanding.
func (g *SubmissionGuard) Busy(projectID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inFlight[projectID]
	return busy
}
