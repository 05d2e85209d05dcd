package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/nutriplan/backend/internal/options"
	"github.com/pageza/nutriplan/backend/internal/types"
)

// OptionsHandler serves the language and vibe choices
type OptionsHandler struct {
	catalog *options.Catalog
}

func NewOptionsHandler(catalog *options.Catalog) *OptionsHandler {
	return &OptionsHandler{catalog: catalog}
}

// List returns the normalized catalogs and the default selections
func (h *OptionsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, types.OptionsResponse{
		Languages: h.catalog.Languages,
		Vibes:     h.catalog.Vibes,
		Defaults: types.OptionDefaults{
			Language: options.DefaultLanguage,
			Vibe:     options.DefaultVibe,
		},
	})
}
