package question

// Default returns the built-in Android quiz.
func Default() []Question {
	return []Question{
		TrueFalse{
			Prompt:  "True or False: An Activity is destroyed during recomposition?",
			Correct: false,
		},
		SingleChoice{
			Prompt:  "Which component manages the app's UI?",
			Options: []string{"Activity", "Service", "ContentProvider"},
			Correct: "Activity",
		},
		MultiChoice{
			Prompt:  "Select all that are Android UI elements.",
			Options: []string{"TextView", "Service", "RecyclerView"},
			Correct: []string{"TextView", "RecyclerView"},
		},
		FreeText{
			Prompt: "What is the primary language used for Android development?",
		},
	}
}
