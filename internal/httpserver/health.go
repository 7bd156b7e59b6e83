package httpserver

import (
	"org-tasks-sync/pkg/response"

	"github.com/gin-gonic/gin"
)

// Service identity reported by the probe endpoints.
const (
	HealthVersion = "1.0.0"
	ServiceName   = "orgsync"
)

type probeResp struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Service string `json:"service"`
}

func probe(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, probeResp{
			Status:  status,
			Version: HealthVersion,
			Service: ServiceName,
		})
	}
}

// healthCheck godoc
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} probeResp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) { probe("healthy")(c) }

// readyCheck godoc
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} probeResp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) { probe("ready")(c) }

// liveCheck godoc
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} probeResp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) { probe("alive")(c) }
