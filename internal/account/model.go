// Package account owns the registered-account collection and the current
// session: signup, login/logout, profile mutation, and account deletion
// with a cascade into the diary store.
package account

import "time"

// Account is a registered user. The password is stored verbatim, a known
// defect inherited from the persisted format, kept so that existing
// snapshots keep working.
type Account struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the reduced account view kept while logged in. It never
// carries the password.
type Session struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}
