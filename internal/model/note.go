package model

// Note is a user-owned note in the notes service.
//
// OwnerID is never serialized: clients learn ownership only implicitly, by
// what the owner-scoped endpoints return. It is always derived from the
// verified token subject, never from request input.
type Note struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"-"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}
