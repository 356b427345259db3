package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"folio/domain"
)

// repoService implements app.RepoService using the GitHub REST API.
type repoService struct {
	client *Client
}

// NewRepoService creates a RepoService backed by GitHub.
func NewRepoService(client *Client) *repoService {
	return &repoService{client: client}
}

// githubRepo is the subset of GitHub's Repository entity we care about.
type githubRepo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Language        string `json:"language"`
	Fork            bool   `json:"fork"`
}

func (s *repoService) ListPublicRepos(ctx context.Context, username string) ([]domain.RepoSummary, error) {
	// sort=pushed only affects recency on the server side; the displayed
	// order is ranked by stars client-side.
	path := fmt.Sprintf("/users/%s/repos?sort=pushed", url.PathEscape(username))

	data, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetching repos: %w", err)
	}

	var repos []githubRepo
	if err := json.Unmarshal(data, &repos); err != nil {
		return nil, fmt.Errorf("parsing repos: %w", err)
	}

	out := make([]domain.RepoSummary, 0, len(repos))
	for _, r := range repos {
		out = append(out, domain.RepoSummary{
			ID:          r.ID,
			Name:        r.Name,
			HTMLURL:     r.HTMLURL,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.StargazersCount,
			Forks:       r.ForksCount,
			Fork:        r.Fork,
		})
	}

	return out, nil
}
