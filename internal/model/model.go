// Package model defines the records the exercise tracker persists and
// serves: users, standalone exercise records, and per-user cumulative logs.
//
// Identifier fields serialize as "_id" because that is the wire format
// clients of this API expect.
package model

// User is an account that exercises are logged against. Usernames are not
// unique; two users may share a name and are told apart by id alone.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// Exercise is a single logged exercise, stored as its own record. The same
// description/duration/date triple is also appended to the owning user's
// Log; the two copies are never reconciled.
type Exercise struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	// Date is the display form "Www Mmm DD YYYY", e.g. "Mon Jan 01 1990".
	Date string `json:"date"`
}

// LogEntry is one exercise inside a user's log.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// Log is the cumulative exercise record for one user. Its ID is the owning
// user's id, not a separate key. Count always equals len(Entries) in the
// stored record; filtered views returned to clients recompute it.
type Log struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Entries  []LogEntry `json:"log"`
}
