package tournament

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Gender tags a player for mixed-roster validation upstream. The engine
// itself never looks at it.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Player is an immutable tournament participant. Ranking 1 is the best;
// higher numbers are worse.
type Player struct {
	ID      string
	Name    string
	Ranking int
	Gender  Gender
}

// NewPlayer creates a player with a fresh ID.
func NewPlayer(name string, ranking int) *Player {
	return &Player{
		ID:      uuid.NewString(),
		Name:    name,
		Ranking: ranking,
	}
}

// Team is a doubles pairing. AverageRanking is derived once at construction;
// rankings are treated as frozen for the tournament's duration. The counters
// are only mutated by Tournament.PlayMatch.
type Team struct {
	ID             string
	Players        [2]*Player
	AverageRanking float64

	Points        float64
	MatchesPlayed int
	MatchesWon    int
}

// NewTeam pairs two players into a team.
func NewTeam(p1, p2 *Player) *Team {
	return &Team{
		ID:             uuid.NewString(),
		Players:        [2]*Player{p1, p2},
		AverageRanking: float64(p1.Ranking+p2.Ranking) / 2,
	}
}

// Label renders the team as "A & B" for schedules and standings.
func (t *Team) Label() string {
	return fmt.Sprintf("%s & %s", t.Players[0].Name, t.Players[1].Name)
}

// WinRate is MatchesWon over MatchesPlayed, 0 when the team has not played.
func (t *Team) WinRate() float64 {
	if t.MatchesPlayed == 0 {
		return 0
	}
	return float64(t.MatchesWon) / float64(t.MatchesPlayed)
}

// Match binds a generated pairing to a court and a time slot. Winner and
// Score are set together by exactly one PlayMatch call; until then Winner is
// nil and Score is 0. Score stays an exported field so the result-entry layer
// can apply the dominant-win adjustment after the fact.
type Match struct {
	ID        string
	Team1     *Team
	Team2     *Team
	Court     int
	StartTime time.Time
	EndTime   time.Time

	Winner *Team
	Score  float64
}

// HasTeam reports whether team is one of the match's two participants.
func (m *Match) HasTeam(team *Team) bool {
	return team == m.Team1 || team == m.Team2
}

// Tournament owns the roster and, after GenerateSchedule, the full match
// list. Matches hold non-owning references into the roster.
type Tournament struct {
	Name      string
	NumCourts int
	Teams     []*Team

	Matches   []*Match
	Schedule  map[time.Time][]*Match
	SlotTimes []time.Time
	StartTime time.Time
	EndTime   time.Time

	slotDuration time.Duration
	flatScoring  bool
	scheduled    bool
}

// Option configures a Tournament at construction.
type Option func(*Tournament)

// WithFlatScoring makes every match worth exactly 1.0 point, disabling the
// ranking-upset bonus.
func WithFlatScoring() Option {
	return func(t *Tournament) { t.flatScoring = true }
}

// WithSlotDuration overrides the default one-hour time slot.
func WithSlotDuration(d time.Duration) Option {
	return func(t *Tournament) { t.slotDuration = d }
}

// New creates an empty tournament playing on numCourts courts.
func New(name string, numCourts int, opts ...Option) *Tournament {
	t := &Tournament{
		Name:         name,
		NumCourts:    numCourts,
		Schedule:     make(map[time.Time][]*Match),
		slotDuration: time.Hour,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddTeam registers a team on the roster. Once the schedule has been
// generated the roster is frozen.
func (t *Tournament) AddTeam(team *Team) error {
	if t.scheduled {
		return &ValidationError{Reason: "cannot add a team after the schedule has been generated"}
	}
	t.Teams = append(t.Teams, team)
	return nil
}

// Scheduled reports whether GenerateSchedule has run.
func (t *Tournament) Scheduled() bool {
	return t.scheduled
}
