package models

import "time"

// Session is the server-side state behind the session cookie. The role flags are
// captured at login.
type Session struct {
	ID            string    `json:"-"`
	UserID        string    `json:"userId"`
	Username      string    `json:"username"`
	IsAdmin       bool      `json:"isAdmin"`
	IsMasterAdmin bool      `json:"isMasterAdmin"`
	CreatedAt     time.Time `json:"createdAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// CurrentUser returns the caller view of the session.
func (s Session) CurrentUser() CurrentUser {
	return CurrentUser{
		ID:            s.UserID,
		Username:      s.Username,
		IsAdmin:       s.IsAdmin,
		IsMasterAdmin: s.IsMasterAdmin,
	}
}
