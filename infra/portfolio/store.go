package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"folio/domain"
)

// PostStore keeps blog posts in a flat JSON file. It is the system of
// record: identifiers and timestamps are assigned here, never by the
// editor.
type PostStore struct {
	path  string
	posts []domain.Post
	now   func() time.Time
}

// OpenPostStore loads the posts file, seeding from the portfolio's bundled
// posts when the file does not exist yet.
func OpenPostStore(path string, seed []domain.Post) (*PostStore, error) {
	s := &PostStore{path: path, now: time.Now}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading posts %s: %w", path, err)
		}
		s.posts = append([]domain.Post(nil), seed...)
		return s, nil
	}
	if err := json.Unmarshal(data, &s.posts); err != nil {
		return nil, fmt.Errorf("parsing posts: %w", err)
	}
	return s, nil
}

// All returns the stored posts in no particular order.
func (s *PostStore) All() []domain.Post {
	return append([]domain.Post(nil), s.posts...)
}

// Save persists a draft. A blank draft ID creates a new post with a fresh
// ID and the current time; otherwise the matching post is replaced in
// place, keeping its original timestamp. Blank content is rejected.
func (s *PostStore) Save(draft domain.Draft) (domain.Post, error) {
	if strings.TrimSpace(draft.Content) == "" {
		return domain.Post{}, domain.ErrEmptyContent
	}

	post := domain.Post{
		ID:          draft.ID,
		Title:       draft.Title,
		Content:     draft.Content,
		Attachments: append([]domain.Attachment(nil), draft.Attachments...),
		Links:       append([]domain.Link(nil), draft.Links...),
	}

	if post.ID == "" {
		post.ID = uuid.New().String()
		post.CreatedAt = s.now()
		s.posts = append(s.posts, post)
	} else {
		replaced := false
		for i, p := range s.posts {
			if p.ID == post.ID {
				post.CreatedAt = p.CreatedAt
				s.posts[i] = post
				replaced = true
				break
			}
		}
		if !replaced {
			return domain.Post{}, fmt.Errorf("no post with id %s", post.ID)
		}
	}

	if err := s.flush(); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

func (s *PostStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating posts dir: %w", err)
	}
	data, err := json.MarshalIndent(s.posts, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding posts: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing posts: %w", err)
	}
	return nil
}
