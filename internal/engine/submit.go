package engine

import (
	"strings"
	"time"
)

// DefaultReadingMinutes is used when a reading submission omits a duration.
const DefaultReadingMinutes = 15

// SubmitInput carries a child submission. Kind-specific fields are read
// according to the task's kind; the rest are ignored.
type SubmitInput struct {
	TaskID string

	// Reading
	BookName string
	Duration int
	VideoRef string

	// English
	Sentence SentencePair
	AudioRef string
}

// Submit moves a todo or rejected task to pending, folding the submission
// details into the task. It refuses submissions without the kind-specific
// proof reference. Resubmission after a rejection overwrites the previous
// details but leaves the rest of the task untouched.
func Submit(s *State, in SubmitInput, now time.Time) (*State, error) {
	i := s.taskIndex(in.TaskID)
	if i < 0 {
		return nil, NotFoundError{TaskID: in.TaskID}
	}
	if !s.Tasks[i].Status.Submittable() {
		return nil, validationf("task %q is %s; only todo or rejected tasks can be submitted", in.TaskID, s.Tasks[i].Status)
	}

	next := s.Clone()
	t := &next.Tasks[i]

	switch t.Kind {
	case KindReading:
		if strings.TrimSpace(in.VideoRef) == "" {
			return nil, ProofRequiredError{Kind: KindReading}
		}
		duration := in.Duration
		if duration <= 0 {
			duration = DefaultReadingMinutes
		}
		t.Reading = &ReadingDetails{
			BookName: strings.TrimSpace(in.BookName),
			Duration: duration,
			VideoRef: in.VideoRef,
		}
		t.English = nil
	case KindEnglish:
		if strings.TrimSpace(in.AudioRef) == "" {
			return nil, ProofRequiredError{Kind: KindEnglish}
		}
		t.English = &EnglishDetails{
			Sentence:    in.Sentence.Sentence,
			Translation: in.Sentence.Translation,
			AudioRef:    in.AudioRef,
		}
		t.Reading = nil
	default:
		return nil, validationf("task %q has unknown kind %q", in.TaskID, t.Kind)
	}

	t.Status = StatusPending
	at := now
	t.SubmittedAt = &at
	return next, nil
}
