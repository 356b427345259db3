package domain

// Profile identifies the portfolio owner.
type Profile struct {
	Name              string `json:"name"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	ResumePDFURL      string `json:"resumePdfUrl"`
}

// ProjectLinks holds the external references of a project.
type ProjectLinks struct {
	GitHub string `json:"github"`
	Demo   string `json:"demo"`
}

// Project is a locally curated portfolio project. It doubles as the
// fallback source for the repository list when the GitHub API is
// unreachable.
type Project struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Technologies []string     `json:"technologies"`
	Links        ProjectLinks `json:"links"`
}

// SocialMedia is a single social link (platform name plus handle or URL).
type SocialMedia struct {
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
}

// AdditionalInfo carries the free-form extras of the data source.
type AdditionalInfo struct {
	SocialMedia []SocialMedia `json:"socialMedia"`
}

// Education is one entry of the education history.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Period      string `json:"period"`
}

// Portfolio is the structured record the whole UI renders from.
// It is loaded once at startup and treated as read-only everywhere;
// edits flow back up through explicit messages, never by mutating it.
type Portfolio struct {
	Profile
	Summary        string         `json:"summary"`
	Education      []Education    `json:"education"`
	Activities     []string       `json:"activities"`
	AdditionalInfo AdditionalInfo `json:"additionalInfo"`
	Projects       []Project      `json:"projects"`
	BlogPosts      []Post         `json:"blogPosts"`
}
