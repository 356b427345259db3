package domain

import "time"

// AttachmentKind classifies an attachment for layout purposes.
type AttachmentKind string

const (
	AttachmentImage    AttachmentKind = "image"
	AttachmentDocument AttachmentKind = "document"
)

// Attachment is an embedded file on a post. Data holds a data: URI so the
// post stays self-contained. ID is generated when the attachment is added
// and is the removal handle — positional indexes are display-only.
type Attachment struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Kind AttachmentKind `json:"kind"`
	Data string         `json:"data"`
}

// Link is a titled URL on a post.
type Link struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Post is a single timeline entry. ID and CreatedAt are assigned by the
// posts store on first save, never by the editor.
type Post struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	CreatedAt   time.Time    `json:"date"`
	Attachments []Attachment `json:"attachments"`
	Links       []Link       `json:"links"`
}

// Draft is the editor's working copy of a post. An empty ID means the
// draft is new. The editor hands a Draft back whole on save and never
// persists anything itself.
type Draft struct {
	ID          string
	Title       string
	Content     string
	Attachments []Attachment
	Links       []Link
}

// DraftOf builds a Draft populated from an existing post.
func DraftOf(p Post) Draft {
	return Draft{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		Attachments: append([]Attachment(nil), p.Attachments...),
		Links:       append([]Link(nil), p.Links...),
	}
}
