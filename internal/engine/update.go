package engine

// TaskPatch is a partial task edit. It deliberately has no status or reward
// fields: status moves only through the state machine (Submit/Approve/
// Reject), and only Approve may mint a transaction.
type TaskPatch struct {
	Title       *string
	Description *string

	// Reading
	BookName *string
	Duration *int
	VideoRef *string

	// English
	Sentence *SentencePair
	AudioRef *string
}

// UpdateTask replaces the matching task with a merged copy. Kind-specific
// fields may only be patched on a task of that kind.
func UpdateTask(s *State, id string, patch TaskPatch) (*State, error) {
	i := s.taskIndex(id)
	if i < 0 {
		return nil, NotFoundError{TaskID: id}
	}

	kind := s.Tasks[i].Kind
	if kind != KindReading && (patch.BookName != nil || patch.Duration != nil || patch.VideoRef != nil) {
		return nil, validationf("task %q is %s; reading fields cannot be patched", id, kind)
	}
	if kind != KindEnglish && (patch.Sentence != nil || patch.AudioRef != nil) {
		return nil, validationf("task %q is %s; english fields cannot be patched", id, kind)
	}
	if patch.Duration != nil && *patch.Duration <= 0 {
		return nil, validationf("duration must be positive, got %d", *patch.Duration)
	}

	next := s.Clone()
	t := &next.Tasks[i]

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}

	if kind == KindReading && (patch.BookName != nil || patch.Duration != nil || patch.VideoRef != nil) {
		if t.Reading == nil {
			t.Reading = &ReadingDetails{}
		}
		if patch.BookName != nil {
			t.Reading.BookName = *patch.BookName
		}
		if patch.Duration != nil {
			t.Reading.Duration = *patch.Duration
		}
		if patch.VideoRef != nil {
			t.Reading.VideoRef = *patch.VideoRef
		}
	}

	if kind == KindEnglish && (patch.Sentence != nil || patch.AudioRef != nil) {
		if t.English == nil {
			t.English = &EnglishDetails{}
		}
		if patch.Sentence != nil {
			t.English.Sentence = patch.Sentence.Sentence
			t.English.Translation = patch.Sentence.Translation
		}
		if patch.AudioRef != nil {
			t.English.AudioRef = *patch.AudioRef
		}
	}

	return next, nil
}
