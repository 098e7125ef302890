package question

// Kind identifies a question variant.
type Kind int

const (
	// KindTrueFalse is a true/false question.
	KindTrueFalse Kind = iota
	// KindSingleChoice is a choose-one question.
	KindSingleChoice
	// KindMultiChoice is a choose-any question.
	KindMultiChoice
	// KindFreeText is an open text question.
	KindFreeText
)

// String returns the file format name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTrueFalse:
		return "true_false"
	case KindSingleChoice:
		return "single_choice"
	case KindMultiChoice:
		return "multi_choice"
	case KindFreeText:
		return "free_text"
	default:
		return "unknown"
	}
}

// Question is one of TrueFalse, SingleChoice, MultiChoice or FreeText.
type Question interface {
	Kind() Kind
	Text() string
	isQuestion()
}

// TrueFalse asks the user to judge a statement.
type TrueFalse struct {
	Prompt  string
	Correct bool
}

// SingleChoice asks the user to pick exactly one option.
type SingleChoice struct {
	Prompt  string
	Options []string
	Correct string
}

// MultiChoice asks the user to pick every matching option.
type MultiChoice struct {
	Prompt  string
	Options []string
	Correct []string
}

// FreeText asks for a typed answer. No correct answer is stored.
type FreeText struct {
	Prompt string
}

func (TrueFalse) Kind() Kind    { return KindTrueFalse }
func (SingleChoice) Kind() Kind { return KindSingleChoice }
func (MultiChoice) Kind() Kind  { return KindMultiChoice }
func (FreeText) Kind() Kind     { return KindFreeText }

func (q TrueFalse) Text() string    { return q.Prompt }
func (q SingleChoice) Text() string { return q.Prompt }
func (q MultiChoice) Text() string  { return q.Prompt }
func (q FreeText) Text() string     { return q.Prompt }

func (TrueFalse) isQuestion()    {}
func (SingleChoice) isQuestion() {}
func (MultiChoice) isQuestion()  {}
func (FreeText) isQuestion()     {}

// Options returns the selectable options of a choice question, or nil.
func Options(q Question) []string {
	switch typed := q.(type) {
	case SingleChoice:
		return typed.Options
	case MultiChoice:
		return typed.Options
	default:
		return nil
	}
}
