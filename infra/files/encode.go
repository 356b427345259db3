// Package files turns local files into self-contained post attachments.
package files

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"folio/domain"
)

// Encode reads the file at path and returns it as an embedded attachment:
// the content becomes a data: URI and the kind is classified purely by the
// declared MIME type prefix ("image/" → image, everything else →
// document). The attachment gets a fresh generated ID.
func Encode(path string) (domain.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("reading attachment %s: %w", path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	kind := domain.AttachmentDocument
	if strings.HasPrefix(contentType, "image/") {
		kind = domain.AttachmentImage
	}

	return domain.Attachment{
		ID:   uuid.New().String(),
		Name: filepath.Base(path),
		Kind: kind,
		Data: fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)),
	}, nil
}
