package domain

import "time"

// Streak is the singleton consecutive-active-days record.
type Streak struct {
	ID             int64
	Current        int
	Longest        int
	LastActiveDate string // YYYY-MM-DD, empty until first activity
}

// MarkActive records activity on the given date and returns true if the
// streak changed. Calling twice with the same date is a no-op; a date
// exactly one day after LastActiveDate extends the streak; anything else
// (first activity or a gap) restarts it at one.
func (s *Streak) MarkActive(date string) bool {
	if s.LastActiveDate == date {
		return false
	}

	if s.LastActiveDate != "" {
		if last, err := time.Parse(DateFormat, s.LastActiveDate); err == nil {
			next := last.AddDate(0, 0, 1).Format(DateFormat)
			if next == date {
				s.Current++
			} else {
				s.Current = 1
			}
		} else {
			s.Current = 1
		}
	} else {
		s.Current = 1
	}

	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	s.LastActiveDate = date
	return true
}
