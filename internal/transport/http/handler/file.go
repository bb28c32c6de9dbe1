package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthmate/internal/app"
	"healthmate/internal/transport/http/response"
)

const maxUploadSize = 10 << 20 // 10 MB

type FileHandler struct {
	fileService *app.FileService
}

func NewFileHandler(fileService *app.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// Upload accepts a multipart form with "file" (the report PDF or image),
// stores it in object storage and records its metadata.
func (h *FileHandler) Upload(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing report file (form field 'file')")
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "report file too large (max 10MB)")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "failed to open uploaded file")
		return
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	file, err := h.fileService.Upload(c.Request.Context(), app.UploadInput{
		UserID:      userID,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Body:        f,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "upload failed")
		return
	}

	response.OK(c, gin.H{"file": file})
}

func (h *FileHandler) List(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	files, err := h.fileService.ListFiles(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list files failed")
		return
	}
	response.OK(c, files)
}
