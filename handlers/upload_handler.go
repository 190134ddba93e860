package handlers

import (
	"path/filepath"
	"strconv"

	"news-portal-cms/config"
	"news-portal-cms/helper"
	"news-portal-cms/logger"
	"news-portal-cms/services"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService services.UploadService
	Helper        *helper.HTTPHelper
}

func NewUploadHandler(uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		Helper:        &helper.HTTPHelper{},
	}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	userID, _ := c.Get("user_id")

	file, err := c.FormFile("file")
	if err != nil {
		h.Helper.SendBadRequest(c, "No file uploaded", h.Helper.EmptyJsonMap())
		return
	}

	upload, err := h.uploadService.CreateUpload(
		file.Filename,
		file.Header.Get("Content-Type"),
		file.Size,
		userID.(uint),
	)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	dst := filepath.Join(config.UploadDir(), upload.FileName)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		logger.Errorf("failed to store uploaded file %s: %v", dst, err)
		if removeErr := h.uploadService.RemoveUpload(upload.ID); removeErr != nil {
			logger.Errorf("failed to roll back upload record %d: %v", upload.ID, removeErr)
		}
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "File uploaded", upload)
}

func (h *UploadHandler) GetUploads(c *gin.Context) {
	userID, _ := c.Get("user_id")

	uploads, err := h.uploadService.GetUserUploads(userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Uploads loaded", gin.H{"uploads": uploads})
}

func (h *UploadHandler) DeleteUpload(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid upload ID", h.Helper.EmptyJsonMap())
		return
	}

	userID, _ := c.Get("user_id")

	if err := h.uploadService.DeleteUpload(uint(id), userID.(uint)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Upload deleted", h.Helper.EmptyJsonMap())
}
