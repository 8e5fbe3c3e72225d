package badges

import (
	"context"
)

// Store is the persistence the service needs: lookup of already earned
// keys and insertion of new awards.
type Store interface {
	EarnedBadgeKeys(ctx context.Context, learnerID string, keys []string) (map[string]bool, error)
	InsertBadges(ctx context.Context, learnerID string, keys []string) error
}

// Service awards badges with store-backed deduplication. A nil store
// degrades to derive-only: candidates are reported but nothing
// persists, so an unprovisioned database never blocks a round.
type Service struct {
	store Store

	// SessionBadges accumulates keys newly earned during the current
	// sitting, for recap display.
	SessionBadges []string
}

// NewService creates a badge service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Award persists the candidate keys the learner has not earned yet and
// returns them. Already-earned keys are silently dropped.
func (s *Service) Award(ctx context.Context, learnerID string, candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	if s.store == nil {
		s.SessionBadges = append(s.SessionBadges, candidates...)
		return candidates, nil
	}

	earned, err := s.store.EarnedBadgeKeys(ctx, learnerID, candidates)
	if err != nil {
		return nil, err
	}

	var fresh []string
	for _, key := range candidates {
		if !earned[key] {
			fresh = append(fresh, key)
		}
	}
	if len(fresh) == 0 {
		return nil, nil
	}

	if err := s.store.InsertBadges(ctx, learnerID, fresh); err != nil {
		return nil, err
	}
	s.SessionBadges = append(s.SessionBadges, fresh...)
	return fresh, nil
}

// ResetSession clears the session accumulator. Called at session start.
func (s *Service) ResetSession() {
	s.SessionBadges = nil
}
