package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gorm.io/gorm"
	"liyu1981.xyz/kpi-alerts-service/pkg/common"
	"liyu1981.xyz/kpi-alerts-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type KPICreateRequest struct {
	KPIID       string `json:"kpi_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
}

var kpiCreateRequestSchema = z.Struct(z.Shape{
	"KPIID":       z.String().Required(),
	"Name":        z.String().Required(),
	"Description": z.String(),
	"Unit":        z.String(),
})

func (rs *RestfulServer) CreateKPI(c *gin.Context) {
	var req KPICreateRequest
	if err := kpiCreateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if _, err := rs.Kpi.Metric.GetKPI(req.KPIID); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "KPI with id '" + req.KPIID + "' already exists"})
		return
	}

	if err := rs.Kpi.Metric.CreateKPI(&models.KPIMetric{
		KPIID:       req.KPIID,
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	created, err := rs.Kpi.Metric.GetKPI(req.KPIID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (rs *RestfulServer) ListKPIs(c *gin.Context) {
	kpis, err := rs.Kpi.Metric.ListKPIs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, kpis)
}

func (rs *RestfulServer) GetKPI(c *gin.Context) {
	kpiID := c.Param("kpi_id")

	if !rs.CheckKPILimiter(kpiID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	metric, err := rs.Kpi.Metric.GetKPI(kpiID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "KPI with id '" + kpiID + "' not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, metric)
}

type KPIUpdateRequest struct {
	Value     float64 `json:"value"`
	DateRange string  `json:"date_range"`
}

var kpiUpdateRequestSchema = z.Struct(z.Shape{
	"Value":     z.Float64().Required(),
	"DateRange": z.String(),
})

func (rs *RestfulServer) UpdateKPIValue(c *gin.Context) {
	kpiID := c.Param("kpi_id")

	if !rs.CheckKPILimiter(kpiID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req KPIUpdateRequest
	if err := kpiUpdateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	result, err := rs.Kpi.Monitor.UpdateKPIValue(kpiID, req.Value, "", req.DateRange)
	if err != nil {
		c.JSON(http.StatusInternalServerError, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

type PreferenceCreateRequest struct {
	UserID            string  `json:"user_id"`
	KPIID             string  `json:"kpi_id"`
	Email             string  `json:"email"`
	ThresholdValue    float64 `json:"threshold_value"`
	ThresholdOperator string  `json:"threshold_operator"`
	Enabled           bool    `json:"enabled"`
	CooldownHours     int     `json:"cooldown_hours"`
	AlertFrequency    string  `json:"alert_frequency"`
	DateRange         string  `json:"date_range"`
}

var preferenceCreateRequestSchema = z.Struct(z.Shape{
	"UserID":         z.String().Required(),
	"KPIID":          z.String().Required(),
	"Email":          z.String().Email().Required(),
	"ThresholdValue": z.Float64().Required(),
	"ThresholdOperator": z.String().OneOf([]string{
		string(models.OperatorLessThan),
		string(models.OperatorLessThanOrEqual),
		string(models.OperatorGreaterThan),
		string(models.OperatorGreaterThanOrEqual),
		string(models.OperatorEqual),
	}),
	"Enabled":        z.Bool(),
	"CooldownHours":  z.Int().GTE(0),
	"AlertFrequency": z.String(),
	"DateRange":      z.String(),
})

func (rs *RestfulServer) CreatePreference(c *gin.Context) {
	var req PreferenceCreateRequest
	if err := preferenceCreateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	pref := models.NotificationPreference{
		UserID:            req.UserID,
		KPIID:             req.KPIID,
		Email:             req.Email,
		ThresholdValue:    req.ThresholdValue,
		ThresholdOperator: req.ThresholdOperator,
		Enabled:           req.Enabled,
		CooldownHours:     req.CooldownHours,
		AlertFrequency:    req.AlertFrequency,
		DateRange:         req.DateRange,
	}

	if err := rs.Kpi.Preference.CreatePreference(&pref); err != nil {
		// sqlite reports an unknown kpi_id as a foreign key violation
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot create preference: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, pref)
}

func (rs *RestfulServer) ListPreferences(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	prefs, err := rs.Kpi.Preference.ListPreferences(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (rs *RestfulServer) DeletePreference(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	id, err := strconv.ParseUint(c.Param("preference_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preference id"})
		return
	}

	err = rs.Kpi.Preference.DeletePreference(uint(id), userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "preference not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

type HistoryItem struct {
	KPIID          string  `json:"kpi_id"`
	KPIName        string  `json:"kpi_name"`
	ThresholdValue float64 `json:"threshold_value"`
	ActualValue    float64 `json:"actual_value"`
	Email          string  `json:"email"`
	SentAt         string  `json:"sent_at"`
}

func (rs *RestfulServer) GetHistory(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	records, err := rs.Kpi.History.ListHistory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	items := common.Mapper(records, func(r models.NotificationHistory) HistoryItem {
		return HistoryItem{
			KPIID:          r.KPIID,
			KPIName:        r.KPIName,
			ThresholdValue: r.ThresholdValue,
			ActualValue:    r.ActualValue,
			Email:          r.Email,
			SentAt:         r.SentAt.Format(time.RFC3339),
		}
	})

	c.JSON(http.StatusOK, items)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	kpiID := c.Param("kpi_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(kpiID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
