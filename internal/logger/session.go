package logger

import (
	"go.uber.org/zap"

	"quiz/internal/quizstate"
)

// ObserveSession logs every state change of a quiz session at debug level.
// The returned function stops logging.
func ObserveSession(log *zap.Logger, state *quizstate.State) func() {
	sessionLog := log.With(zap.String("session_id", state.SessionID()))
	return state.Subscribe(func(event quizstate.Event) {
		snap := event.Snapshot
		sessionLog.Debug("quiz state changed",
			zap.Stringer("event", event.Kind),
			zap.Stringer("direction", event.Direction),
			zap.Int("index", snap.Index),
			zap.Stringer("question_kind", snap.Question.Kind()),
			zap.Bool("answered", snap.Answered()),
		)
	})
}
