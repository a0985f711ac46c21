package handlers

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// safeDeleteUpload removes the blob behind an image URL, but only when the
// URL resolves to a file inside the uploads directory. External hosts and
// paths escaping the directory are refused so that a crafted product
// record cannot delete arbitrary files.
func safeDeleteUpload(uploadsDir, imageURL string) error {
	trimmed := strings.TrimSpace(imageURL)
	if trimmed == "" {
		return nil
	}

	if parsed, err := url.Parse(trimmed); err == nil && parsed.Path != "" {
		trimmed = parsed.Path
	}

	cleanRel := path.Clean("/" + strings.TrimPrefix(trimmed, "/"))
	cleanRel = strings.TrimPrefix(cleanRel, "/")

	if !strings.HasPrefix(cleanRel, "uploads/") {
		return fmt.Errorf("refusing to delete non-upload path: %s", imageURL)
	}
	name := strings.TrimPrefix(cleanRel, "uploads/")

	cleanBase := filepath.Clean(uploadsDir)
	targetPath := filepath.Join(cleanBase, filepath.FromSlash(name))
	cleanTarget := filepath.Clean(targetPath)
	if cleanTarget == cleanBase || !strings.HasPrefix(cleanTarget, cleanBase+string(os.PathSeparator)) {
		return fmt.Errorf("refusing to delete path outside uploads dir: %s", imageURL)
	}

	if err := os.Remove(cleanTarget); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return nil
}
