package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cogniz/internal/badges"
	"github.com/abhisek/cogniz/internal/content"
	"github.com/abhisek/cogniz/internal/feedback"
	"github.com/abhisek/cogniz/internal/mastery"
	"github.com/abhisek/cogniz/internal/session"
	"github.com/abhisek/cogniz/internal/spacedrep"
	"github.com/abhisek/cogniz/internal/store"
	"github.com/google/uuid"
)

// AnswerResult is everything a frontend needs to render the response to
// one submitted answer.
type AnswerResult struct {
	IsCorrect bool
	// RetryOpen is true when a wrong first answer opened the single retry.
	// The round is not finalized and no progress was written.
	RetryOpen bool
	// Outcome is set once the round finalizes.
	Outcome  *session.RoundOutcome
	Feedback feedback.Output
	// LevelUps lists level boundaries crossed by this answer.
	LevelUps []session.LevelUp
	// NewBadges lists badge keys first earned by this answer.
	NewBadges []string
}

// SubmitAnswer grades one choice against the current round and, when the
// round finalizes, runs the full progression pipeline: mastery update,
// review (re)scheduling, streak, badges, and the attempt log. A wrong
// first answer only opens the retry; nothing is persisted for it beyond
// the attempt event.
func (e *Engine) SubmitAnswer(ctx context.Context, state *session.SessionState, activity *content.Activity, choiceIndex int) (*AnswerResult, error) {
	round := state.CurrentRound
	if round == nil {
		return nil, fmt.Errorf("no active round")
	}

	now := time.Now()
	correct := choiceIndex == activity.Content.CorrectIndex
	attemptNumber := round.AttemptNumber
	usedHint := round.UsedHint
	plan := round.Plan
	roundID := uuid.NewString()

	outcome := session.HandleAnswer(state, correct, now)

	event := store.AttemptEventData{
		LearnerID:      e.learner.ID,
		SessionID:      state.SessionID,
		RoundID:        roundID,
		ActivityID:     activity.ID,
		Skill:          plan.Skill,
		Mode:           string(plan.Mode),
		AttemptNumber:  attemptNumber,
		ChoiceIndex:    choiceIndex,
		IsCorrect:      correct,
		UsedHint:       usedHint,
		ResponseTimeMs: int(now.Sub(round.PresentedAt).Milliseconds()),
	}
	if outcome != nil {
		event.XPAwarded = outcome.XPAwarded
		event.StrategyXP = outcome.StrategyXP
	}
	if err := e.store.Events().AppendAttempt(ctx, event); err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	result := &AnswerResult{
		IsCorrect: correct,
		RetryOpen: outcome == nil,
		Outcome:   outcome,
		Feedback:  e.feedbackFor(activity, plan, correct, choiceIndex, attemptNumber),
	}
	if outcome == nil {
		return result, nil
	}

	if err := e.finalizeRound(ctx, state, activity, outcome, result, now); err != nil {
		return nil, err
	}
	state.AdvancePhase()
	return result, nil
}

// finalizeRound writes every consequence of a finalized round. Only the
// mastery write is load-bearing; review scheduling, the streak, and
// badges are enrichment, so their failures never roll back an answer the
// learner already gave.
func (e *Engine) finalizeRound(ctx context.Context, state *session.SessionState, activity *content.Activity, out *session.RoundOutcome, result *AnswerResult, now time.Time) error {
	newLevel, err := e.applyMastery(ctx, state, out, result)
	if err != nil {
		return err
	}
	if err := e.rescheduleReview(ctx, activity, out, now); err != nil {
		return nil
	}
	streak, err := e.touchStreak(ctx, now)
	if err != nil {
		return nil
	}

	candidates := badges.CandidateKeys(badges.Input{
		Skill:         out.Plan.Skill,
		NewLevel:      newLevel,
		IsBoss:        out.Plan.Mode == mastery.ModeBoss,
		IsCorrect:     out.IsCorrect,
		SolvedOnRetry: out.RecoveryWin,
		Streak:        streak,
		Now:           now,
	})
	awarded, err := e.badges.Award(ctx, e.learner.ID, candidates)
	if err != nil {
		return nil
	}
	if len(awarded) > 0 {
		state.RecordBadges(awarded)
		result.NewBadges = awarded
	}
	return nil
}

func (e *Engine) applyMastery(ctx context.Context, state *session.SessionState, out *session.RoundOutcome, result *AnswerResult) (int, error) {
	states, err := e.store.SkillStates().Load(ctx, e.learner.ID)
	if err != nil {
		return 0, fmt.Errorf("load skill states: %w", err)
	}
	current := mastery.DefaultSkillState(out.Plan.Skill)
	for _, st := range states {
		if st.Skill == out.Plan.Skill {
			current = st
			break
		}
	}

	res := mastery.UpdateState(mastery.UpdateInput{
		CurrentLevel:        current.Level,
		CurrentXP:           current.XP,
		CurrentMasteryScore: current.MasteryScore,
		IsCorrect:           out.IsCorrect,
		AttemptNumber:       out.AttemptNumber,
		UsedHint:            out.UsedHint,
		Mode:                out.Plan.Mode,
	})
	updated := mastery.Apply(current, res)
	updated.UpdatedAt = time.Now()
	if err := e.store.SkillStates().Upsert(ctx, e.learner.ID, updated); err != nil {
		return 0, fmt.Errorf("save skill state: %w", err)
	}

	if res.LeveledUp {
		state.RecordLevelUp(out.Plan.Skill, current.Level, res.NewLevel)
		result.LevelUps = append(result.LevelUps, session.LevelUp{
			Skill: out.Plan.Skill,
			From:  current.Level,
			To:    res.NewLevel,
		})
	}
	return res.NewLevel, nil
}

func (e *Engine) rescheduleReview(ctx context.Context, activity *content.Activity, out *session.RoundOutcome, now time.Time) error {
	existing, err := e.store.Reviews().Get(ctx, e.learner.ID, activity.ID)
	if err != nil {
		return fmt.Errorf("load review entry: %w", err)
	}
	entry := spacedrep.ReviewEntry{
		ActivityID: activity.ID,
		Skill:      out.Plan.Skill,
	}
	if existing != nil {
		entry = *existing
	}
	entry = spacedrep.Reschedule(entry, spacedrep.ReviewInput{
		Now:           now,
		WasCorrect:    out.IsCorrect,
		AttemptNumber: out.AttemptNumber,
	})
	if err := e.store.Reviews().Upsert(ctx, e.learner.ID, entry); err != nil {
		return fmt.Errorf("save review entry: %w", err)
	}
	return nil
}

// touchStreak advances the daily streak for a finalized round and returns
// the new count.
func (e *Engine) touchStreak(ctx context.Context, now time.Time) (int, error) {
	data, err := e.store.Streaks().Get(ctx, e.learner.ID)
	if err != nil {
		return 0, fmt.Errorf("load streak: %w", err)
	}
	next := session.NextStreak(data.CurrentStreak, data.LastPlayedDate, now)
	data.CurrentStreak = next
	data.LastPlayedDate = now.Format("2006-01-02")
	if err := e.store.Streaks().Save(ctx, e.learner.ID, data); err != nil {
		return 0, fmt.Errorf("save streak: %w", err)
	}
	return next, nil
}

func (e *Engine) feedbackFor(activity *content.Activity, plan session.NextItemPlan, correct bool, choiceIndex, attemptNumber int) feedback.Output {
	body := activity.Content
	chosen := ""
	if choiceIndex >= 0 && choiceIndex < len(body.Choices) {
		chosen = body.Choices[choiceIndex]
	}
	correctChoice := ""
	if body.CorrectIndex >= 0 && body.CorrectIndex < len(body.Choices) {
		correctChoice = body.Choices[body.CorrectIndex]
	}
	return feedback.Generate(feedback.Input{
		AgeBand:       e.AgeBand(),
		Skill:         plan.Skill,
		IsCorrect:     correct,
		CorrectChoice: correctChoice,
		ChosenChoice:  chosen,
		Explanation:   body.Explanation,
		StrategyTip:   body.Tip,
		AttemptNumber: attemptNumber,
	})
}
