package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/metrics"
)

// Metrics records request counts, latency and in-flight requests. Routes
// are labelled by their pattern so ids do not blow up cardinality.
func Metrics(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		reg.HTTPRequestsInFlight.Inc()
		start := time.Now()
		c.Next()
		reg.HTTPRequestsInFlight.Dec()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		reg.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
