// Package drive derives viewer and download URLs for Google Drive hosted
// documents. Unrecognized URLs pass through unchanged; nothing here
// returns an error, so rendering can never be blocked by a bad link.
package drive

import (
	"fmt"
	"net/url"
	"strings"
)

// Links holds the two URLs derived from one source document URL.
type Links struct {
	Preview  string
	Download string
}

// DeriveLinks extracts a Drive file identifier from raw and builds
// provider-specific preview and direct-download URLs from it. The
// identifier is looked for first in a /file/d/<ID>/ path segment, then in
// an id=<ID> query parameter. On a parse miss both outputs equal the
// input.
func DeriveLinks(raw string) Links {
	id := fileID(raw)
	if id == "" {
		return Links{Preview: raw, Download: raw}
	}
	return Links{
		Preview:  fmt.Sprintf("https://drive.google.com/file/d/%s/preview", id),
		Download: fmt.Sprintf("https://drive.google.com/uc?export=download&id=%s", id),
	}
}

func fileID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	parts := strings.Split(u.Path, "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "file" && parts[i+1] == "d" && parts[i+2] != "" {
			return parts[i+2]
		}
	}

	return u.Query().Get("id")
}
