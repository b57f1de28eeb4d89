package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/GoSim-25-26J-441/sentinel-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/api/http/routes"
	archdomain "github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/repository"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/service"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/summarize"
)

type RouterDeps struct {
	ServiceName        string
	Version            string
	CORSAllowedOrigins []string

	Catalog    *archdomain.Catalog
	Store      repository.Store
	Sessions   *service.SessionService
	Summarizer summarize.Summarizer
	Metrics    *metrics.Registry
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.Metrics(dep.Metrics))
	r.Use(cors.New(corsConfig(dep.CORSAllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store, dep.Summarizer.Name())
	healthHandler.RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(dep.Metrics.Handler()))

	routes.RegisterV1(r, routes.V1Deps{
		Catalog:    dep.Catalog,
		Sessions:   dep.Sessions,
		Summarizer: dep.Summarizer,
		Metrics:    dep.Metrics,
	})
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
