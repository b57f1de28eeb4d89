package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/catalog", h.GetCatalog)
	rg.GET("/catalog/components/:id", h.GetComponent)
	rg.GET("/layout/:id", h.GetLayout)

	// stateless classification of a query-string view state
	rg.GET("/snapshot", h.GetSnapshot)
	rg.GET("/diagram.dot", h.GetDiagramDOT)

	rg.POST("/components/:id/analysis", h.AnalyzeComponent)
}
