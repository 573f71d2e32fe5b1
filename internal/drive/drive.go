// Package drive wraps the Google Drive API for the two operations the
// form needs: creating a per-client folder and uploading documents into
// it.
package drive

import (
	"context"
	"io"

	"server/config"
	"server/internal/logger"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	driveScope     = "https://www.googleapis.com/auth/drive"
	folderMimeType = "application/vnd.google-apps.folder"
)

// Store is the file-store surface the controllers depend on.
type Store interface {
	CreateFolder(ctx context.Context, name string) (string, error)
	Upload(ctx context.Context, folderID, name, mimeType string, content io.Reader) (string, error)
}

type Service struct {
	svc            *drive.Service
	parentFolderID string
	log            logger.Logger
}

func NewService(ctx context.Context, config config.Config) (*Service, error) {
	log := logger.New("drive").Function("NewService")

	if config.GoogleCredentials == "" {
		return nil, log.ErrMsg("no Google credentials configured")
	}

	creds, err := google.CredentialsFromJSON(ctx, []byte(config.GoogleCredentials), driveScope)
	if err != nil {
		return nil, log.Err("invalid Google credentials JSON", err)
	}

	svc, err := drive.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, log.Err("failed to create drive service", err)
	}

	return &Service{
		svc:            svc,
		parentFolderID: config.DriveFolderID,
		log:            logger.New("drive"),
	}, nil
}

// CreateFolder creates a folder under the configured parent and returns
// its id.
func (s *Service) CreateFolder(ctx context.Context, name string) (string, error) {
	log := s.log.Function("CreateFolder")

	folder := &drive.File{
		Name:     name,
		MimeType: folderMimeType,
	}
	if s.parentFolderID != "" {
		folder.Parents = []string{s.parentFolderID}
	}

	created, err := s.svc.Files.Create(folder).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", log.Err("failed to create folder", err, "name", name)
	}

	return created.Id, nil
}

// Upload stores one file in the given folder and returns its web view
// link.
func (s *Service) Upload(ctx context.Context, folderID, name, mimeType string, content io.Reader) (string, error) {
	log := s.log.Function("Upload")

	created, err := s.svc.Files.Create(&drive.File{
		Name:    name,
		Parents: []string{folderID},
	}).
		Media(content, googleapi.ContentType(mimeType)).
		Fields("id, webViewLink").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", log.Err("failed to upload file", err, "name", name, "folderID", folderID)
	}

	return created.WebViewLink, nil
}
