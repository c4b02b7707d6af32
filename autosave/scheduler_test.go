package autosave

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioforge/portfolio-backend/models"
)

type recordingSave struct {
	mu    sync.Mutex
	calls []*models.RawPortfolio
	err   error
}

func (r *recordingSave) save(_ context.Context, _ uuid.UUID, rec *models.RawPortfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, rec)
	return r.err
}

func (r *recordingSave) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *recordingSave) last() *models.RawPortfolio {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

func doc(name, summary string) *models.RawPortfolio {
	return &models.RawPortfolio{
		PersonalInfo: map[string]any{"fullName": name},
		Summary:      summary,
	}
}

func TestBurstOfEditsYieldsOneSaveWithFinalState(t *testing.T) {
	rec := &recordingSave{}
	s := New(rec.save, WithQuietPeriod(20*time.Millisecond))
	defer s.Close()

	userID := uuid.New()
	for i := 0; i < 5; i++ {
		s.Notify(userID, doc("Jane Doe", fmt.Sprintf("edit %d", i)))
		time.Sleep(2 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return rec.count() == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, "edit 4", rec.last().Summary)

	// no stragglers
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestSuppressedWithoutFullName(t *testing.T) {
	rec := &recordingSave{}
	s := New(rec.save, WithQuietPeriod(10*time.Millisecond))
	defer s.Close()

	s.Notify(uuid.New(), doc("", "summary without a name"))

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, rec.count())
}

func TestStatusLifecycle(t *testing.T) {
	rec := &recordingSave{}
	s := New(rec.save,
		WithQuietPeriod(10*time.Millisecond),
		WithDisplayTTL(30*time.Millisecond, 30*time.Millisecond))
	defer s.Close()

	userID := uuid.New()
	assert.Equal(t, StatusIdle, s.Status(userID))

	s.Notify(userID, doc("Jane Doe", ""))
	require.Eventually(t, func() bool { return s.Status(userID) == StatusSaved },
		time.Second, 2*time.Millisecond)

	// saved state auto-clears back to idle
	require.Eventually(t, func() bool { return s.Status(userID) == StatusIdle },
		time.Second, 2*time.Millisecond)
}

func TestSaveErrorSurfacesAsTransientStatus(t *testing.T) {
	rec := &recordingSave{err: errors.New("store down")}
	s := New(rec.save,
		WithQuietPeriod(10*time.Millisecond),
		WithDisplayTTL(20*time.Millisecond, 40*time.Millisecond))
	defer s.Close()

	userID := uuid.New()
	s.Notify(userID, doc("Jane Doe", ""))

	require.Eventually(t, func() bool { return s.Status(userID) == StatusError },
		time.Second, 2*time.Millisecond)
	require.Eventually(t, func() bool { return s.Status(userID) == StatusIdle },
		time.Second, 2*time.Millisecond)
}

func TestFlushWritesImmediately(t *testing.T) {
	rec := &recordingSave{}
	s := New(rec.save, WithQuietPeriod(time.Hour))
	defer s.Close()

	userID := uuid.New()
	s.Notify(userID, doc("Jane Doe", "pending"))
	require.Zero(t, rec.count())

	require.NoError(t, s.Flush(context.Background(), userID))
	assert.Equal(t, 1, rec.count())
	assert.Equal(t, "pending", rec.last().Summary)

	// nothing left pending
	require.NoError(t, s.Flush(context.Background(), userID))
	assert.Equal(t, 1, rec.count())
}

func TestFlushAllDrainsEveryPendingUser(t *testing.T) {
	rec := &recordingSave{}
	s := New(rec.save, WithQuietPeriod(time.Hour))
	defer s.Close()

	for i := 0; i < 3; i++ {
		s.Notify(uuid.New(), doc("Jane Doe", "pending"))
	}

	require.NoError(t, s.FlushAll(context.Background()))
	assert.Equal(t, 3, rec.count())
}

func TestNotifyAfterCloseIsIgnored(t *testing.T) {
	rec := &recordingSave{}
	s := New(rec.save, WithQuietPeriod(5*time.Millisecond))
	s.Close()

	s.Notify(uuid.New(), doc("Jane Doe", ""))
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, rec.count())
}
