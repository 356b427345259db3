package app

import (
	"context"

	"folio/domain"
)

// RepoService lists public repositories for a user.
type RepoService interface {
	// ListPublicRepos returns the user's public repositories sorted by
	// most recent push. Forks are included; callers filter and rank.
	ListPublicRepos(ctx context.Context, username string) ([]domain.RepoSummary, error)
}
