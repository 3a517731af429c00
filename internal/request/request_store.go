package request

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	requesterrors "leavedesk/internal/request/errors"
)

// Store owns the ordered request collection for the process. Every mutation
// rewrites the full snapshot through the Repository before it becomes
// visible, so a reload always reproduces the collection exactly. The store
// is constructed once and injected; there is no package-level instance.
type Store struct {
	mu       sync.Mutex
	repo     Repository
	logger   *zap.Logger
	requests []LeaveRequest
}

// NewStore purges deprecated snapshot keys, then loads the current one. An
// absent or corrupt snapshot is not an error: the collection is reseeded
// from the deterministic generator and persisted immediately.
func NewStore(ctx context.Context, repo Repository, seeder *Seeder, logger ...*zap.Logger) (*Store, error) {
	l := zap.L().Named("request.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.store")
	}
	s := &Store{repo: repo, logger: l}

	if err := repo.PurgeDeprecated(ctx); err != nil {
		l.Warn("purge deprecated snapshot keys failed", zap.Error(err))
	}

	loaded, err := repo.Load(ctx)
	switch {
	case err == nil:
		s.requests = loaded
		l.Info("request snapshot loaded", zap.Int("count", len(loaded)))
	case errors.Is(err, ErrSnapshotNotFound), errors.Is(err, ErrSnapshotCorrupt):
		l.Warn("request snapshot unusable, reseeding", zap.Error(err))
		s.requests = seeder.Generate()
		if err := repo.Save(ctx, s.requests); err != nil {
			return nil, fmt.Errorf("persist seed snapshot: %w", err)
		}
		l.Info("request snapshot reseeded", zap.Int("count", len(s.requests)))
	default:
		return nil, err
	}

	return s, nil
}

// List returns a snapshot copy in insertion order, most recent first.
func (s *Store) List() []LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.requests)
}

func (s *Store) Get(id string) (LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.ID == id {
			return r.clone(), nil
		}
	}
	return LeaveRequest{}, requesterrors.ErrRequestNotFound
}

// Create prepends a new record. The store allocates the id when the caller
// supplies none, rejects duplicates otherwise, and always recomputes
// TotalDays from the date span; a forged total can never reach the balance
// calculation.
func (s *Store) Create(ctx context.Context, r LeaveRequest) (LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = s.nextIDLocked()
	} else {
		for _, existing := range s.requests {
			if existing.ID == r.ID {
				return LeaveRequest{}, requesterrors.ErrDuplicateRequestID
			}
		}
	}
	r.TotalDays = InclusiveDays(r.StartDate, r.EndDate)
	r.Version = uuid.NewString()

	next := make([]LeaveRequest, 0, len(s.requests)+1)
	next = append(next, r.clone())
	next = append(next, s.requests...)

	if err := s.repo.Save(ctx, next); err != nil {
		return LeaveRequest{}, err
	}
	s.requests = next
	return r, nil
}

// Update applies mutate to the matching record. A missing id is an explicit
// not-found error, never a silent no-op. When expectedVersion is non-empty
// it must match the record's current version; a mismatch means another
// reviewer got there first. CreatedAt and ID survive any mutation and
// TotalDays is re-derived after it.
func (s *Store) Update(ctx context.Context, id, expectedVersion string, mutate func(*LeaveRequest) error) (LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return LeaveRequest{}, requesterrors.ErrRequestNotFound
	}
	current := s.requests[idx]
	if expectedVersion != "" && expectedVersion != current.Version {
		return LeaveRequest{}, requesterrors.ErrVersionConflict
	}

	updated := current.clone()
	if err := mutate(&updated); err != nil {
		return LeaveRequest{}, err
	}
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	updated.TotalDays = InclusiveDays(updated.StartDate, updated.EndDate)
	updated.Version = uuid.NewString()

	next := cloneAll(s.requests)
	next[idx] = updated.clone()

	if err := s.repo.Save(ctx, next); err != nil {
		return LeaveRequest{}, err
	}
	s.requests = next
	return updated, nil
}

// UpdateBatch applies mutate to every listed id with all-or-nothing
// semantics: one missing id or one failed mutation and nothing is committed
// or persisted.
func (s *Store) UpdateBatch(ctx context.Context, ids []string, mutate func(*LeaveRequest) error) ([]LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.requests)
	updated := make([]LeaveRequest, 0, len(ids))

	for _, id := range ids {
		idx := -1
		for i, r := range next {
			if r.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, requesterrors.ErrRequestNotFound
		}

		r := &next[idx]
		createdAt := r.CreatedAt
		if err := mutate(r); err != nil {
			return nil, err
		}
		r.ID = id
		r.CreatedAt = createdAt
		r.TotalDays = InclusiveDays(r.StartDate, r.EndDate)
		r.Version = uuid.NewString()
		updated = append(updated, r.clone())
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, err
	}
	s.requests = next
	return updated, nil
}

func (s *Store) indexLocked(id string) int {
	for i, r := range s.requests {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// nextIDLocked allocates the next REQ id above every numeric suffix already
// in the collection, including the seeded REQ101+ band.
func (s *Store) nextIDLocked() string {
	max := 0
	for _, r := range s.requests {
		suffix := strings.TrimPrefix(r.ID, "REQ")
		if suffix == r.ID {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("REQ%03d", max+1)
}
