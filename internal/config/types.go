package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Turso         TursoConfig
	Tournament    TournamentConfig
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// TournamentConfig carries the scheduling defaults. NumCourts should be at
// least half the team count or overflow pairings are dropped from the
// schedule.
type TournamentConfig struct {
	Name        string
	NumCourts   int
	SlotMinutes int
	FlatScoring bool
}
