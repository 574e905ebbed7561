package achievements

import (
	"errors"
	"time"

	"github.com/chans00n/myfc-app-sub001/internal/database"
	"github.com/chans00n/myfc-app-sub001/pkg/logger"

	apperrors "github.com/chans00n/myfc-app-sub001/pkg/errors"
)

// StatsFunc supplies the current stats snapshot for a user. The engine treats
// stats as an injected read; services.ComputeWorkoutStats is the production
// implementation.
type StatsFunc func(userID string) (WorkoutStats, error)

// NotifyFunc is called once per newly awarded achievement, after the award is
// durably recorded. Failures inside it must not propagate.
type NotifyFunc func(userID string, def Definition)

// Engine composes evaluation and awarding for callers at the HTTP edge.
type Engine struct {
	Catalog *Catalog
	Stats   StatsFunc
	Notify  NotifyFunc
}

func NewEngine(catalog *Catalog, stats StatsFunc, notify NotifyFunc) *Engine {
	return &Engine{Catalog: catalog, Stats: stats, Notify: notify}
}

// EvaluateAndAward computes the user's stats, awards every newly qualifying
// achievement, and notifies once per award. Awards happen strictly before
// their notifications. A duplicate award (a concurrent evaluation won the
// insert) is skipped silently, including its notification.
func (e *Engine) EvaluateAndAward(userID string) ([]Definition, error) {
	if userID == "" {
		return nil, apperrors.ErrAuthenticationRequired
	}

	stats, err := e.Stats(userID)
	if err != nil {
		return nil, err
	}

	earned, err := EarnedIDs(userID)
	if err != nil {
		return nil, err
	}

	qualified := e.Catalog.Evaluate(stats, earned)
	if len(qualified) == 0 {
		return nil, nil
	}

	var awarded []Definition
	for _, def := range qualified {
		_, err := Award(userID, def.ID, time.Now())
		if errors.Is(err, apperrors.ErrAlreadyAwarded) {
			continue
		}
		if err != nil {
			// Transient storage failure: report what was awarded so far, the
			// caller may retry the rest.
			return awarded, err
		}

		awarded = append(awarded, def)

		if e.Notify != nil {
			e.Notify(userID, def)
		}
	}

	if len(awarded) > 0 {
		if err := database.CacheInvalidate(database.PointsCacheKey(userID)); err != nil {
			logger.Warn().Err(err).Str("user_id", userID).Msg("Failed to invalidate points cache")
		}
	}

	return awarded, nil
}

// TotalPoints is the engine-level points read, with a short-lived cache in
// front of the row store.
func (e *Engine) TotalPoints(userID string) (int, error) {
	if userID == "" {
		return 0, apperrors.ErrAuthenticationRequired
	}

	var cached int
	if err := database.CacheGet(database.PointsCacheKey(userID), &cached); err == nil {
		return cached, nil
	}

	total, err := TotalPoints(e.Catalog, userID)
	if err != nil {
		return 0, err
	}

	if err := database.CacheSet(database.PointsCacheKey(userID), total, 30*time.Second); err != nil {
		logger.Warn().Err(err).Str("user_id", userID).Msg("Failed to cache points")
	}

	return total, nil
}
