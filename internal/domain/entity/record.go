package entity

import "time"

// Record holds the fields the store assigns to every owned entity.
// It is embedded so the JSON stays flat: id, userId, createdAt.
type Record struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Meta returns the embedded record metadata.
func (r *Record) Meta() *Record {
	return r
}

// OwnedBy reports whether the record belongs to userID
func (r *Record) OwnedBy(userID string) bool {
	return userID != "" && r.UserID == userID
}

// Entity is implemented by pointers to every owned entity type.
type Entity interface {
	Meta() *Record
}
