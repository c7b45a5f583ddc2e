package handler

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/padhaihub/padhai_go_server/internal/pkg/oss"
	"github.com/padhaihub/padhai_go_server/internal/pkg/response"
)

// 封面图大小上限 5MB
const maxCoverSize = 5 << 20

var allowedCoverExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadHandler struct {
	ossClient *oss.Client
}

func NewUploadHandler(ossClient *oss.Client) *UploadHandler {
	return &UploadHandler{
		ossClient: ossClient,
	}
}

// UploadCover 上传封面图到 OSS
// POST /api/admin/upload/cover
func (h *UploadHandler) UploadCover(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.ParamError(c, "请上传文件")
		return
	}
	defer file.Close()

	if header.Size > maxCoverSize {
		response.ParamError(c, "文件过大，最大支持 5MB")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedCoverExts[ext] {
		response.ParamError(c, "仅支持图片格式")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		response.ServerError(c, "文件读取失败")
		return
	}

	url, err := h.ossClient.UploadCover(data, ext)
	if err != nil {
		response.ServerError(c, "上传失败")
		return
	}

	response.Success(c, gin.H{"url": url})
}
