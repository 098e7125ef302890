package live

import "quiz/internal/quizstate"

// View holds presentation state derived from quiz events. The quiz itself
// is read directly when rendering.
type View struct {
	// Direction of the last navigation; drives the transition marker.
	Direction quizstate.Direction
	LastEvent string
	Moves     int
	Edits     int
}
