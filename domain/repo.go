package domain

// RepoSource says where a repository list came from.
type RepoSource int

const (
	// RepoSourceLive marks data fetched from the GitHub API.
	RepoSourceLive RepoSource = iota
	// RepoSourceFallback marks data synthesized from local projects after
	// the API call failed. Presented as normal content, not as an error.
	RepoSourceFallback
)

// RepoSummary is the normalized repository shape rendered by the projects
// view, regardless of whether it originated live or from local fallback.
type RepoSummary struct {
	ID          int64
	Name        string
	HTMLURL     string
	Description string
	Language    string
	Stars       int
	Forks       int
	Fork        bool
}

// FallbackLanguage is used when a fallback project lists no technologies.
const FallbackLanguage = "Code"

// ReposFromProjects synthesizes repository summaries from local projects.
// Only projects carrying a GitHub link qualify; star and fork counts are
// forced to zero since no live data exists for them.
func ReposFromProjects(projects []Project) []RepoSummary {
	repos := make([]RepoSummary, 0, len(projects))
	for _, p := range projects {
		if p.Links.GitHub == "" {
			continue
		}
		lang := FallbackLanguage
		if len(p.Technologies) > 0 {
			lang = p.Technologies[0]
		}
		repos = append(repos, RepoSummary{
			Name:        p.Title,
			HTMLURL:     p.Links.GitHub,
			Description: p.Description,
			Language:    lang,
		})
	}
	return repos
}
