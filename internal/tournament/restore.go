package tournament

import (
	"sort"
	"time"
)

// Restore rebuilds a tournament from persisted state. Teams must be in
// roster order and matches carry their bound court and slot times; the slot
// map is rebuilt from the matches so the schedule invariant (every match in
// exactly one slot) holds by construction. A tournament restored with
// matches counts as scheduled.
func Restore(name string, numCourts int, teams []*Team, matches []*Match, start, end time.Time, opts ...Option) *Tournament {
	t := New(name, numCourts, opts...)
	t.Teams = teams
	t.Matches = matches
	t.StartTime = start
	t.EndTime = end

	for _, m := range matches {
		if _, ok := t.Schedule[m.StartTime]; !ok {
			t.SlotTimes = append(t.SlotTimes, m.StartTime)
		}
		t.Schedule[m.StartTime] = append(t.Schedule[m.StartTime], m)
	}
	sort.Slice(t.SlotTimes, func(i, j int) bool {
		return t.SlotTimes[i].Before(t.SlotTimes[j])
	})
	for _, slot := range t.SlotTimes {
		matches := t.Schedule[slot]
		sort.Slice(matches, func(i, j int) bool {
			return matches[i].Court < matches[j].Court
		})
	}

	t.scheduled = len(matches) > 0
	return t
}
