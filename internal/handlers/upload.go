package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Upload stores one image payload in the local blob directory and returns
// its public URL. Downstream the URL is an opaque string: nothing ever
// checks that it stays reachable.
func Upload(uploadsDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /upload"
		defer handlePanic(c, route)

		file, err := c.FormFile("image")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "No image file provided")
			return
		}

		filename, err := saveUpload(uploadsDir, file)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		imageURL := publicBaseURL + "/uploads/" + filename
		log.Printf("[%s] stored %s as %s", route, file.Filename, filename)
		c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
	}
}

func saveUpload(dir string, file *multipart.FileHeader) (string, error) {
	if contentType := file.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("Only image files are allowed")
	}

	extension := strings.ToLower(filepath.Ext(file.Filename))
	if extension == "" {
		return "", fmt.Errorf("image file extension is required")
	}
	allowedExtensions := map[string]struct{}{
		".jpg":  {},
		".jpeg": {},
		".png":  {},
		".gif":  {},
		".webp": {},
	}
	if _, ok := allowedExtensions[extension]; !ok {
		return "", fmt.Errorf("unsupported image type: %s", extension)
	}
	const maxImageSize = 5 << 20
	if file.Size > maxImageSize {
		return "", fmt.Errorf("image file too large (max 5MB)")
	}

	// Timestamped names keep the blob directory chronologically browsable;
	// the uuid suffix prevents collisions within the same millisecond.
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), extension)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[upload] saveUpload: failed to create directory %s: %v", dir, err)
		return "", err
	}

	fullPath := filepath.Join(dir, filename)

	out, err := os.Create(fullPath)
	if err != nil {
		log.Printf("[upload] saveUpload: failed to create file %s: %v", fullPath, err)
		return "", err
	}
	defer out.Close()

	in, err := file.Open()
	if err != nil {
		log.Printf("[upload] saveUpload: failed to open upload %s: %v", file.Filename, err)
		return "", err
	}
	defer in.Close()

	if _, err := io.Copy(out, in); err != nil {
		log.Printf("[upload] saveUpload: failed to save file %s: %v", fullPath, err)
		return "", err
	}

	return filename, nil
}
