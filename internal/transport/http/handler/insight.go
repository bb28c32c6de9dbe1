package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"healthmate/internal/app"
	"healthmate/internal/transport/http/response"
)

type InsightHandler struct {
	analysisService *app.AnalysisService
	fileService     *app.FileService
}

func NewInsightHandler(analysisService *app.AnalysisService, fileService *app.FileService) *InsightHandler {
	return &InsightHandler{
		analysisService: analysisService,
		fileService:     fileService,
	}
}

// Analyze triggers the full analysis pipeline for one stored report file and
// returns the created insight.
func (h *InsightHandler) Analyze(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	fileID, err := parseFileIDParam(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid file id")
		return
	}

	insight, err := h.analysisService.Analyze(c.Request.Context(), userID, fileID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrFileNotFound):
			response.Error(c, http.StatusNotFound, response.CodeFileNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "AI processing error: "+err.Error())
		}
		return
	}

	response.OK(c, gin.H{"insight": insight})
}

// GetInsight returns the stored insight for a file with the file details
// attached.
func (h *InsightHandler) GetInsight(c *gin.Context) {
	if _, ok := getUserIDFromContext(c); !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	fileID, err := parseFileIDParam(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid file id")
		return
	}

	insight, err := h.analysisService.GetInsight(c.Request.Context(), fileID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrInsightNotFound):
			response.Error(c, http.StatusNotFound, response.CodeInsightNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch insight failed")
		}
		return
	}

	payload := gin.H{"insight": insight}
	if file, err := h.fileService.GetFile(insight.FileID); err == nil {
		payload["file"] = file
	}
	response.OK(c, payload)
}

func parseFileIDParam(c *gin.Context) (uint, error) {
	raw := strings.TrimSpace(c.Param("fileId"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid file id")
	}
	return uint(id), nil
}
