package routes

import (
	"github.com/gin-gonic/gin"

	archdomain "github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	archhttp "github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/http"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/metrics"
	sessionhttp "github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/http"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/service"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/summarize"
)

type V1Deps struct {
	Catalog    *archdomain.Catalog
	Sessions   *service.SessionService
	Summarizer summarize.Summarizer
	Metrics    *metrics.Registry
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	archhttp.New(dep.Catalog, dep.Summarizer, dep.Metrics).Register(api)

	sessionsGroup := api.Group("/sessions")
	sessionhttp.New(dep.Sessions).Register(sessionsGroup)
}
