package tournament

// MatchByID finds a scheduled match, or nil.
func (t *Tournament) MatchByID(id string) *Match {
	for _, m := range t.Matches {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// TeamByID finds a roster team, or nil.
func (t *Tournament) TeamByID(id string) *Team {
	for _, team := range t.Teams {
		if team.ID == id {
			return team
		}
	}
	return nil
}
