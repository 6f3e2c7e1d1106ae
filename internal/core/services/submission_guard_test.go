package services_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	"github.com/SscSPs/agency_backoffice/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionGuard_RejectsSecondSubmission(t *testing.T) {
	guard := services.NewSubmissionGuard()

	release, err := guard.Acquire("p1", "positions save")
	require.NoError(t, err)
	assert.True(t, guard.Busy("p1"))

	_, err = guard.Acquire("p1", "payment")
	require.Error(t, err)
	assert.ErrorIs(t, err, finance.ErrSubmissionInProgress)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	release()
	assert.False(t, guard.Busy("p1"))

	release2, err := guard.Acquire("p1", "payment")
	require.NoError(t, err)
	release2()
}

func TestSubmissionGuard_ProjectsAreIndependent(t *testing.T) {
	guard := services.NewSubmissionGuard()

	r1, err := guard.Acquire("p1", "invoice creation")
	require.NoError(t, err)
	r2, err := guard.Acquire("p2", "invoice creation")
	require.NoError(t, err)

	r1()
	r2()
}

func TestSubmissionGuard_ReleaseIsIdempotent(t *testing.T) {
	guard := services.NewSubmissionGuard()

	release, err := guard.Acquire("p1", "payment")
	require.NoError(t, err)
	release()

	other, err := guard.Acquire("p1", "payment")
	require.NoError(t, err)

	// A stale release must not free the new holder.
	release()
	assert.True(t, guard.Busy("p1"))
	other()
}

func TestSubmissionGuard_ConcurrentAcquireHasOneWinner(t *testing.T) {
	guard := services.NewSubmissionGuard()

	var (
		wg      sync.WaitGroup
		winners atomic.Int32
		start   = make(chan struct{})
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := guard.Acquire("p1", "payment"); err == nil {
				winners.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}
