package content

import (
	"math/rand/v2"
	"sort"

	"github.com/abhisek/cogniz/internal/session"
	"github.com/abhisek/cogniz/internal/skills"
)

// candidatePoolSize bounds how many closest-difficulty activities the
// resolver random-picks among, so rounds vary without drifting far from
// the target.
const candidatePoolSize = 8

// ResolveRequest asks for one activity matching a planner decision.
type ResolveRequest struct {
	Skill            skills.Skill
	TargetDifficulty int
	Source           session.Source
	AgeBand          AgeBand
	ExcludeIDs       []string
	// DueActivityIDs are the review-queue entries due for Skill, in due
	// order. Consulted only for the review_queue source.
	DueActivityIDs []string
}

// Resolver picks concrete activities for planner decisions.
type Resolver struct {
	lib *Library
	rng *rand.Rand
}

// NewResolver builds a resolver over the given library. A nil rng uses
// the shared global source.
func NewResolver(lib *Library, rng *rand.Rand) *Resolver {
	return &Resolver{lib: lib, rng: rng}
}

// Resolve returns one playable activity for the request, or nil when
// nothing fits. Fallback chain: due review entries, then the new pool
// ranked by difficulty distance, then any playable activity in the
// band. Callers treat nil as "no round available", not an error.
func (r *Resolver) Resolve(req ResolveRequest) *Activity {
	if req.Source == session.SourceReviewQueue {
		if a := r.pickDue(req); a != nil {
			return a
		}
	}

	pool := r.lib.ForBand(req.AgeBand)
	if len(pool) == 0 {
		return nil
	}

	if a := r.pickFromNewPool(pool, req); a != nil {
		return a
	}
	return r.randomPick(pool)
}

func (r *Resolver) pickDue(req ResolveRequest) *Activity {
	excluded := toSet(req.ExcludeIDs)
	var due []*Activity
	for _, id := range req.DueActivityIDs {
		if excluded[id] {
			continue
		}
		a := r.lib.ByID(id)
		if a != nil && a.IsPlayable() {
			due = append(due, a)
		}
	}
	return r.randomPick(due)
}

func (r *Resolver) pickFromNewPool(pool []*Activity, req ResolveRequest) *Activity {
	excluded := toSet(req.ExcludeIDs)
	var withoutExcluded, matchingSkill []*Activity
	for _, a := range pool {
		if excluded[a.ID] {
			continue
		}
		withoutExcluded = append(withoutExcluded, a)
		if a.ResolvedSkill() == req.Skill {
			matchingSkill = append(matchingSkill, a)
		}
	}

	candidates := matchingSkill
	if len(candidates) == 0 {
		candidates = withoutExcluded
	}
	if len(candidates) == 0 {
		return nil
	}

	ranked := make([]*Activity, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		di := abs(ranked[i].DifficultyLevel() - req.TargetDifficulty)
		dj := abs(ranked[j].DifficultyLevel() - req.TargetDifficulty)
		return di < dj
	})

	if len(ranked) > candidatePoolSize {
		ranked = ranked[:candidatePoolSize]
	}
	return r.randomPick(ranked)
}

func (r *Resolver) randomPick(pool []*Activity) *Activity {
	if len(pool) == 0 {
		return nil
	}
	if r.rng != nil {
		return pool[r.rng.IntN(len(pool))]
	}
	return pool[rand.IntN(len(pool))]
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
