package app

import (
	"context"
	"io"
	"strings"

	"healthmate/internal/model"
)

// ObjectUploader stores uploaded report binaries and hands back a retrievable
// URL. The collaborator owns auth and availability guarantees.
type ObjectUploader interface {
	ObjectKey(filename string) string
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type FileRepository interface {
	Create(file *model.File) error
	GetByID(id uint) (*model.File, error)
	ListByUserID(userID uint) ([]model.File, error)
}

type FileService struct {
	fileRepo FileRepository
	uploader ObjectUploader
}

type UploadInput struct {
	UserID      uint
	Filename    string
	ContentType string
	Body        io.Reader
}

func NewFileService(fileRepo FileRepository, uploader ObjectUploader) *FileService {
	return &FileService{
		fileRepo: fileRepo,
		uploader: uploader,
	}
}

// Upload stores the report binary in object storage and records its metadata.
// The created record is immutable: user and URL never change afterwards.
func (s *FileService) Upload(ctx context.Context, input UploadInput) (*model.File, error) {
	if input.UserID == 0 || input.Body == nil {
		return nil, ErrInvalidInput
	}
	filename := strings.TrimSpace(input.Filename)
	if filename == "" {
		return nil, ErrInvalidInput
	}

	key := s.uploader.ObjectKey(filename)
	fileURL, err := s.uploader.Upload(ctx, key, input.ContentType, input.Body)
	if err != nil {
		return nil, err
	}

	file := &model.File{
		UserID:   input.UserID,
		Filename: filename,
		FileURL:  fileURL,
		FileType: input.ContentType,
	}
	if err := s.fileRepo.Create(file); err != nil {
		return nil, err
	}
	return file, nil
}

func (s *FileService) ListFiles(userID uint) ([]model.File, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.fileRepo.ListByUserID(userID)
}

func (s *FileService) GetFile(fileID uint) (*model.File, error) {
	if fileID == 0 {
		return nil, ErrInvalidInput
	}
	file, err := s.fileRepo.GetByID(fileID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, ErrFileNotFound
	}
	return file, nil
}
