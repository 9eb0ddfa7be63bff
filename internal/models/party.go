package models

// Party mirrors a row of the parties table.
type Party struct {
	PartyID int64  `db:"id"`
	Name    string `db:"name"`
	Type    string `db:"type"`
	Active  bool   `db:"active"`
}
