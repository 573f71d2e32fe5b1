package filesController

import (
	"context"
	"mime/multipart"

	"server/internal/drive"
	"server/internal/logger"
)

type FilesController struct {
	store drive.Store
	log   logger.Logger
}

func New(store drive.Store) *FilesController {
	return &FilesController{
		store: store,
		log:   logger.New("FilesController"),
	}
}

// CreateFolder creates one client folder under the configured parent.
func (c *FilesController) CreateFolder(ctx context.Context, name string) (string, error) {
	folderID, err := c.store.CreateFolder(ctx, name)
	if err != nil {
		return "", err
	}

	c.log.Function("CreateFolder").Info("folder created", "folderID", folderID, "name", name)
	return folderID, nil
}

// UploadFiles stores the uploaded documents in the folder one at a time,
// each as its own round trip, and returns the view links in upload
// order.
func (c *FilesController) UploadFiles(ctx context.Context, folderID string, files []*multipart.FileHeader) ([]string, error) {
	log := c.log.Function("UploadFiles")

	links := []string{}
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, log.Err("failed to open uploaded file", err, "filename", header.Filename)
		}

		link, uploadErr := c.store.Upload(ctx, folderID, header.Filename, header.Header.Get("Content-Type"), file)
		file.Close()
		if uploadErr != nil {
			return nil, log.Err("failed to upload file", uploadErr, "filename", header.Filename)
		}

		links = append(links, link)
	}

	log.Info("files uploaded", "count", len(links), "folderID", folderID)
	return links, nil
}
