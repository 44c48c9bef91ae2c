package server

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

// saveImages stores uploaded files under the configured directory and
// returns the generated filenames. Only bare filenames are persisted;
// absolute URLs are a serialization concern (see imageURLs).
func (s *Server) saveImages(c *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(s.cfg.Uploads.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		name := uuid.NewString() + ext
		if err := c.SaveUploadedFile(file, filepath.Join(s.cfg.Uploads.Dir, name)); err != nil {
			return nil, fmt.Errorf("failed to save upload: %w", err)
		}
		names = append(names, name)
	}
	return names, nil
}

// imageURLs rewrites stored filenames to absolute URLs for responses
func (s *Server) imageURLs(names models.StringList) models.StringList {
	urls := make(models.StringList, 0, len(names))
	for _, name := range names {
		urls = append(urls, s.cfg.Server.BaseURL+"/uploads/"+name)
	}
	return urls
}

// jewelryView is the response shape of a jewelry record, with image
// filenames resolved against the public base URL
func (s *Server) jewelryView(j models.Jewelry) models.Jewelry {
	j.Images = s.imageURLs(j.Images)
	return j
}

func (s *Server) jewelryViews(items []models.Jewelry) []models.Jewelry {
	out := make([]models.Jewelry, 0, len(items))
	for _, j := range items {
		out = append(out, s.jewelryView(j))
	}
	return out
}
