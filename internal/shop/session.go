package shop

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/logger"
	"github.com/osse101/RocksBot_Go/internal/metrics"
)

// SessionStore keeps the live shop flows, keyed by flow id. Entries are
// dropped once they have been idle past the flow timeout, so the store
// never outgrows capacity with abandoned menus.
type SessionStore struct {
	flows   *expirable.LRU[string, *Flow]
	timeout time.Duration
	now     func() time.Time
}

// NewSessionStore creates a session store. timeout <= 0 uses
// domain.ShopSessionTimeout.
func NewSessionStore(capacity int, timeout time.Duration) *SessionStore {
	if capacity <= 0 {
		capacity = DefaultSessionCapacity
	}
	if timeout <= 0 {
		timeout = domain.ShopSessionTimeout
	}
	s := &SessionStore{timeout: timeout, now: time.Now}
	// entries outlive the flow timeout so a late click still finds the
	// flow and gets a "session expired" answer
	s.flows = expirable.NewLRU[string, *Flow](capacity, onEvict, 2*timeout)
	return s
}

func onEvict(_ string, f *Flow) {
	if st := f.Snapshot().Stage; st != StageCompleted {
		metrics.SessionsExpired.Inc()
	}
}

// Start opens a new flow for owner
func (s *SessionStore) Start(ctx context.Context, owner domain.UserKey) *Flow {
	f := NewFlow(uuid.NewString(), owner, s.now(), s.timeout)
	s.flows.Add(f.ID, f)
	metrics.SessionsStarted.Inc()
	logger.FromContext(ctx).Debug(LogMsgSessionStarted, "session_id", f.ID, "user", owner.String())
	return f
}

// Get returns the flow with id, or domain.ErrSessionExpired when it is
// gone or timed out. Flows belonging to another user are reported as
// domain.ErrInvalidSelection. A successful Get restarts the entry's TTL,
// so only idle flows age out of the store.
func (s *SessionStore) Get(id string, user domain.UserKey) (*Flow, error) {
	f, ok := s.flows.Get(id)
	if !ok || f.Expired(s.now()) {
		return nil, domain.ErrSessionExpired
	}
	if f.Owner != user {
		return nil, domain.ErrInvalidSelection
	}
	s.flows.Add(id, f)
	return f, nil
}

// Finish drops a flow once it can no longer change
func (s *SessionStore) Finish(id string) {
	s.flows.Remove(id)
}

// Len returns the number of tracked flows
func (s *SessionStore) Len() int {
	return s.flows.Len()
}
