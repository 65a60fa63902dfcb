package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/kpi-alerts-service/pkg/kpi"
)

type RestfulServer struct {
	Server           *gin.Engine
	Kpi              *kpi.KPI
	RateLimiterStore *kpi.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(kpiID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(kpiID)
	}
}

func (rs *RestfulServer) CheckKPILimiter(kpiID string) bool {
	limiter := rs.GetLimiter(kpiID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(kpiID string, kpiRate float64, kpiBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(kpiID, rate.Limit(kpiRate), kpiBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	kpis := rs.Server.Group("/kpis")
	{
		kpis.POST("", rs.CreateKPI)
		kpis.GET("", rs.ListKPIs)
		kpis.GET("/:kpi_id", rs.GetKPI)
		kpis.POST("/:kpi_id/update", rs.UpdateKPIValue)
		kpis.POST("/:kpi_id/limiter", rs.PostLimiter)
	}

	notifications := rs.Server.Group("/notifications")
	{
		notifications.POST("/preferences", rs.CreatePreference)
		notifications.GET("/preferences", rs.ListPreferences)
		notifications.DELETE("/preferences/:preference_id", rs.DeletePreference)
		notifications.GET("/history", rs.GetHistory)
	}
}
