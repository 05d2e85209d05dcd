package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/nutriplan/backend/internal/plantext"
	"github.com/pageza/nutriplan/backend/internal/types"
)

const (
	exportFormatMarkdown = "markdown"
	exportFormatText     = "text"
)

// Export converts a finished plan to markdown or to a plain text download
func (h *PlanHandler) Export(c *gin.Context) {
	var req types.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch format := c.DefaultQuery("format", exportFormatMarkdown); format {
	case exportFormatMarkdown:
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(plantext.ToMarkdownish(req.HTML)))
	case exportFormatText:
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", plantext.ExportFilename))
		c.Data(http.StatusOK, plantext.ExportContentType, []byte(plantext.ToPlainText(req.HTML)))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported export format %q", format)})
	}
}
