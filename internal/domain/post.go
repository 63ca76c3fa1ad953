package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxPostBodyLength caps the length of a post body.
const MaxPostBodyLength = 140

// Post represents a short status update authored by a user. Posts are
// append-only: they are created, listed in feeds, and removed only when
// their author is removed.
type Post struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPost creates a new Post with the given author and body.
// It generates a new UUID for the post ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewPost(authorID uuid.UUID, body string) (*Post, error) {
	post := &Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Body:      strings.TrimSpace(body),
		CreatedAt: time.Now().UTC(),
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
func (p *Post) Validate() error {
	errs := newFieldErrors()

	if p.ID == uuid.Nil {
		errs.Add("id", "cannot be empty")
	}
	if p.AuthorID == uuid.Nil {
		errs.Add("author_id", "cannot be empty")
	}
	if p.Body == "" {
		errs.Add("body", "cannot be empty")
	} else if len(p.Body) > MaxPostBodyLength {
		errs.Add("body", "must be at most 140 characters")
	}

	if len(errs.Violations) > 0 {
		return errs
	}
	return nil
}
