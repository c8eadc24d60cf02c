package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moyoez/portfolio-resolver/api/models"
	"github.com/moyoez/portfolio-resolver/tool"
	"github.com/moyoez/portfolio-resolver/types"
)

const (
	minQRSize = 64
	maxQRSize = 1024
)

type ShareController struct {
	resolver types.ResolverInterface
}

func NewShareController(resolver types.ResolverInterface) *ShareController {
	return &ShareController{resolver: resolver}
}

// HandleQRCode renders a PNG QR code for a file's download URL.
// GET /files/:category/qrcode?name=<file>&size=<px>
func (ctrl *ShareController) HandleQRCode(c *gin.Context) {
	category := types.Category(c.Param("category"))
	spec, ok := types.LookupCategory(category)
	if !ok || !spec.IsDirectory() {
		c.JSON(http.StatusBadRequest, models.FastReturnError("Unsupported category"))
		return
	}

	size := tool.DefaultQRSize
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < minQRSize || parsed > maxQRSize {
			c.JSON(http.StatusBadRequest, models.FastReturnError("Invalid size"))
			return
		}
		size = parsed
	}

	res := ctrl.resolver.ResolveMany(c.Request.Context(), category)
	if res.Status == types.StatusFailed {
		c.JSON(http.StatusBadGateway, models.FastReturnError("Failed to load files"))
		return
	}
	file, found := pick(res.Value, c.Query("name"))
	if !found || file.IsPlaceholder() || file.DownloadURL == "" {
		c.JSON(http.StatusNotFound, models.FastReturnError("File not found"))
		return
	}

	png, err := tool.EncodeQRCode(file.DownloadURL, size)
	if err != nil {
		tool.DefaultLogger.Errorf("[Share] %v", err)
		c.JSON(http.StatusInternalServerError, models.FastReturnError("Failed to render QR code"))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func pick(files []types.FileDescriptor, name string) (types.FileDescriptor, bool) {
	for _, f := range files {
		if name == "" || f.Name == name {
			return f, true
		}
	}
	return types.FileDescriptor{}, false
}
