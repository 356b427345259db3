package app

import "folio/domain"

// PostStore is the system of record for blog posts. It assigns identifiers
// and timestamps — the editor never does.
type PostStore interface {
	// All returns every stored post in no particular order.
	All() []domain.Post

	// Save persists a draft. An empty draft ID creates a new post with a
	// fresh ID and timestamp; otherwise the matching post is replaced,
	// keeping its original timestamp.
	Save(draft domain.Draft) (domain.Post, error)
}
