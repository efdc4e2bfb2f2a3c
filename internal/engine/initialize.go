package engine

import "time"

// Initialize produces the working snapshot for the current day.
//
// On first run (prev == nil) it returns the seed snapshot. On a day
// rollover it preserves the streak only when the last login was exactly
// yesterday; a gap of two or more days (or an unparseable last-login date)
// resets it to 0. The initializer itself never increments the streak; that
// happens on full daily completion (see Approve).
//
// It then guarantees one task per (today, kind) for every template, using
// deterministic ids, which makes the whole operation idempotent: running it
// twice for the same date changes nothing.
func Initialize(prev *State, now time.Time, templates []TaskTemplate) *State {
	today := DateOf(now)

	var s *State
	if prev == nil {
		s = seedState(now)
	} else {
		s = prev.Clone()
		if s.LastLoginDate != today {
			yesterday := DateOf(now.AddDate(0, 0, -1))
			if s.LastLoginDate != yesterday {
				s.Streak = 0
			}
			s.LastLoginDate = today
		}
	}

	for _, tpl := range templates {
		if hasTaskFor(s, today, tpl.Kind) {
			continue
		}
		s.Tasks = append(s.Tasks, newDailyTask(tpl, today))
	}

	return s
}

func hasTaskFor(s *State, date string, kind TaskKind) bool {
	for i := range s.Tasks {
		if s.Tasks[i].Date == date && s.Tasks[i].Kind == kind {
			return true
		}
	}
	return false
}
