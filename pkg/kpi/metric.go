package kpi

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/kpi-alerts-service/pkg/common"
	"liyu1981.xyz/kpi-alerts-service/pkg/models"
)

func (k *KPI) createKPI(input *models.KPIMetric) error {
	logger := common.GetLoggerWith(
		common.LoggerNameKPICore,
		zap.String(common.LoggerFieldKPICategory, common.LoggerCategoryKPIMetric),
	)

	metric := models.KPIMetric{
		KPIID:        input.KPIID,
		Name:         input.Name,
		Description:  input.Description,
		Unit:         input.Unit,
		CurrentValue: input.CurrentValue,
		DateRange:    input.DateRange,
	}
	if metric.CurrentValue != nil {
		now := time.Now().UTC()
		metric.LastUpdated = &now
	}

	logger.Info("Received KPI definition", zap.Reflect("kpi", metric))

	if err := k.Db.Conn.Create(&metric).Error; err != nil {
		return err
	}

	logger.Info("Created KPI", zap.String("kpi_id", metric.KPIID))
	return nil
}

func (k *KPI) getKPI(kpiID string) (*models.KPIMetric, error) {
	var metric models.KPIMetric
	err := k.Db.Conn.First(&metric, "kpi_id = ?", kpiID).Error
	return &metric, err
}

func (k *KPI) listKPIs() ([]models.KPIMetric, error) {
	var metrics []models.KPIMetric
	err := k.Db.Conn.Order("kpi_id").Find(&metrics).Error
	return metrics, err
}

func (k *KPI) upsertKPIValue(kpiID string, value float64, dateRange string, at time.Time) error {
	logger := common.GetLoggerWith(
		common.LoggerNameKPICore,
		zap.String(common.LoggerFieldKPICategory, common.LoggerCategoryKPIMetric),
	)

	metric := models.KPIMetric{
		KPIID:        kpiID,
		CurrentValue: &value,
		LastUpdated:  &at,
		DateRange:    dateRange,
	}

	assignments := map[string]interface{}{
		"current_value": value,
		"last_updated":  at,
	}
	if dateRange != "" {
		assignments["date_range"] = dateRange
	}

	logger.Info("Received value for KPI",
		zap.String("kpi_id", kpiID), zap.Float64("value", value))

	err := k.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kpi_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&metric).Error

	if err == nil {
		logger.Info("Upserted value for KPI",
			zap.String("kpi_id", kpiID), zap.Float64("value", value))
	}

	return err
}

type IMetricImpl struct {
	kpi *KPI
}

func (im *IMetricImpl) CreateKPI(input *models.KPIMetric) error {
	return im.kpi.createKPI(input)
}

func (im *IMetricImpl) GetKPI(kpiID string) (*models.KPIMetric, error) {
	return im.kpi.getKPI(kpiID)
}

func (im *IMetricImpl) ListKPIs() ([]models.KPIMetric, error) {
	return im.kpi.listKPIs()
}

func (im *IMetricImpl) UpsertKPIValue(kpiID string, value float64, dateRange string, at time.Time) error {
	return im.kpi.upsertKPIValue(kpiID, value, dateRange, at)
}

func (k *KPI) GetIMetric() IMetric {
	return &IMetricImpl{kpi: k}
}
