// Package engine wires the selection policy, content resolution, mastery
// updates, spaced repetition, streaks, and badges into the round lifecycle
// a frontend drives. Screens and commands talk to the Engine; the Engine is
// the only writer of learner progress.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cogniz/internal/badges"
	"github.com/abhisek/cogniz/internal/content"
	"github.com/abhisek/cogniz/internal/session"
	"github.com/abhisek/cogniz/internal/skills"
	"github.com/abhisek/cogniz/internal/store"
	"github.com/google/uuid"
)

// snapshotsKept bounds how many reset snapshots are retained per learner.
const snapshotsKept = 5

// Engine runs sessions for one learner against one store and library.
type Engine struct {
	store    *store.Store
	lib      *content.Library
	resolver *content.Resolver
	badges   *badges.Service
	learner  *store.Learner

	// playedIDs holds activities already presented this sitting, so a
	// session never repeats itself while fresh content remains.
	playedIDs []string
}

// New builds an engine for the learner.
func New(st *store.Store, lib *content.Library, learner *store.Learner) *Engine {
	return &Engine{
		store:    st,
		lib:      lib,
		resolver: content.NewResolver(lib, nil),
		badges:   badges.NewService(st.Badges()),
		learner:  learner,
	}
}

// WithLearner returns a fresh engine for another profile on the same
// store and library.
func (e *Engine) WithLearner(learner *store.Learner) *Engine {
	return New(e.store, e.lib, learner)
}

// Learner returns the profile this engine runs for.
func (e *Engine) Learner() *store.Learner {
	return e.learner
}

// Profiles lists every learner profile on this store.
func (e *Engine) Profiles(ctx context.Context) ([]*store.Learner, error) {
	return e.store.Learners().List(ctx)
}

// CreateProfile adds a learner profile. Names are unique.
func (e *Engine) CreateProfile(ctx context.Context, name, ageBand string) (*store.Learner, error) {
	existing, err := e.store.Learners().GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("learner %q already exists", name)
	}
	return e.store.Learners().Create(ctx, name, ageBand)
}

// AgeBand returns the learner's content band.
func (e *Engine) AgeBand() content.AgeBand {
	return content.AgeBand(e.learner.AgeBand)
}

// Settings loads the learner's adaptive settings, clamped into range.
func (e *Engine) Settings(ctx context.Context) (session.Settings, error) {
	data, err := e.store.Settings().Get(ctx, e.learner.ID)
	if err != nil {
		return session.Settings{}, err
	}
	return settingsFromData(data), nil
}

// SaveSettings clamps and persists the learner's adaptive settings.
func (e *Engine) SaveSettings(ctx context.Context, s session.Settings) (session.Settings, error) {
	s = s.Clamped()
	err := e.store.Settings().Save(ctx, e.learner.ID, store.SettingsData{
		MainRounds:    s.MainRounds,
		BossEnabled:   s.BossEnabled,
		BossIntensity: s.BossIntensity,
		HintMode:      string(s.HintMode),
		DailyGoal:     s.DailyGoal,
	})
	if err != nil {
		return session.Settings{}, err
	}
	return s, nil
}

// StartSession opens a new sitting using the learner's saved settings.
func (e *Engine) StartSession(ctx context.Context) (*session.SessionState, error) {
	settings, err := e.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	state := session.NewSessionState(uuid.NewString(), settings)
	e.playedIDs = nil

	err = e.store.Events().AppendSession(ctx, store.SessionEventData{
		LearnerID: e.learner.ID,
		SessionID: state.SessionID,
		Action:    "started",
	})
	if err != nil {
		return nil, fmt.Errorf("record session start: %w", err)
	}
	return state, nil
}

// RestartSession rewinds the sitting to its first phase. Progress already
// written stays written; only the in-session aggregates reset.
func (e *Engine) RestartSession(ctx context.Context, state *session.SessionState) error {
	state.Restart()
	e.playedIDs = nil
	return e.store.Events().AppendSession(ctx, store.SessionEventData{
		LearnerID: e.learner.ID,
		SessionID: state.SessionID,
		Action:    "restarted",
	})
}

// FinishSession records the completed sitting.
func (e *Engine) FinishSession(ctx context.Context, state *session.SessionState) error {
	return e.appendSessionEnd(ctx, state, "completed")
}

// AbandonSession records a sitting left before the recap. Any open round
// is dropped without effect.
func (e *Engine) AbandonSession(ctx context.Context, state *session.SessionState) error {
	session.AbandonRound(state)
	return e.appendSessionEnd(ctx, state, "abandoned")
}

func (e *Engine) appendSessionEnd(ctx context.Context, state *session.SessionState, action string) error {
	return e.store.Events().AppendSession(ctx, store.SessionEventData{
		LearnerID:    e.learner.ID,
		SessionID:    state.SessionID,
		Action:       action,
		Rounds:       state.Rounds,
		Correct:      state.Correct,
		XP:           state.XP,
		StrategyXP:   state.StrategyXP,
		DurationSecs: int(time.Since(state.StartTime).Seconds()),
	})
}

// NextRound plans and resolves the next round of the sitting. Returns nil
// when the session has reached its recap, or when no playable activity
// exists for the learner's band.
func (e *Engine) NextRound(ctx context.Context, state *session.SessionState) (*content.Activity, error) {
	phase := state.CurrentPhase()
	if phase == session.PhaseRecap {
		return nil, nil
	}

	now := time.Now()
	states, err := e.store.SkillStates().Load(ctx, e.learner.ID)
	if err != nil {
		return nil, fmt.Errorf("load skill states: %w", err)
	}
	due, err := e.store.Reviews().Due(ctx, e.learner.ID, now, session.RecentWindowSize)
	if err != nil {
		return nil, fmt.Errorf("load due reviews: %w", err)
	}
	recent, err := e.store.Events().RecentAttempts(ctx, e.learner.ID, session.RecentWindowSize)
	if err != nil {
		return nil, fmt.Errorf("load recent attempts: %w", err)
	}

	dueBySkill := make(map[skills.Skill]int, len(due))
	for i := range due {
		dueBySkill[due[i].Skill]++
	}

	plan := session.ChooseNextItem(session.PlannerInput{
		Now:            now,
		DueReviewCount: len(due),
		DueBySkill:     dueBySkill,
		SkillStates:    states,
		RecentAttempts: attemptWindow(recent),
		Phase:          phase,
		BossIntensity:  state.Settings.BossIntensity,
	})

	var dueIDs []string
	for i := range due {
		if due[i].Skill == plan.Skill {
			dueIDs = append(dueIDs, due[i].ActivityID)
		}
	}

	activity := e.resolver.Resolve(content.ResolveRequest{
		Skill:            plan.Skill,
		TargetDifficulty: plan.TargetDifficulty,
		Source:           plan.Source,
		AgeBand:          e.AgeBand(),
		ExcludeIDs:       e.playedIDs,
		DueActivityIDs:   dueIDs,
	})
	if activity == nil {
		return nil, nil
	}

	session.BeginRound(state, plan, activity.ID, now)
	e.playedIDs = append(e.playedIDs, activity.ID)
	return activity, nil
}

// attemptWindow converts stored attempts (newest first) into the planner's
// most-recent-last window.
func attemptWindow(rows []store.Attempt) []session.AttemptSummary {
	out := make([]session.AttemptSummary, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		out = append(out, session.AttemptSummary{
			Skill:          rows[i].Skill,
			IsCorrect:      rows[i].IsCorrect,
			CreatedAt:      rows[i].CreatedAt,
			ResponseTimeMs: rows[i].ResponseTimeMs,
		})
	}
	return out
}

func settingsFromData(d store.SettingsData) session.Settings {
	return session.Settings{
		MainRounds:    d.MainRounds,
		BossEnabled:   d.BossEnabled,
		BossIntensity: d.BossIntensity,
		HintMode:      session.HintMode(d.HintMode),
		DailyGoal:     d.DailyGoal,
	}.Clamped()
}
