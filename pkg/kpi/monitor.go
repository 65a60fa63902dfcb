package kpi

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/kpi-alerts-service/pkg/common"
	"liyu1981.xyz/kpi-alerts-service/pkg/models"
)

// updateKPIValue is the entry point for one metric-update event: persist
// the new value, then evaluate every enabled preference for the KPI. A
// persistence failure aborts the event; evaluation failures never do.
func (k *KPI) updateKPIValue(kpiID string, value float64, kpiName string, dateRange string) (*models.KPIUpdateResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameKPICore,
		zap.String(common.LoggerFieldKPICategory, common.LoggerCategoryKPIMonitor),
	)

	if k.Metric == nil {
		return nil, fmt.Errorf("metric service not available")
	}

	now := time.Now().UTC()
	if err := k.Metric.UpsertKPIValue(kpiID, value, dateRange, now); err != nil {
		logger.Error("Failed to persist KPI value",
			zap.String("kpi_id", kpiID), zap.Error(err))
		return &models.KPIUpdateResult{
			Success: false,
			KPIID:   kpiID,
			Value:   value,
			Error:   err.Error(),
		}, err
	}

	triggered := k.checkKPIThresholds(kpiID, value, kpiName)

	sent := common.Reducer(triggered, func(acc int, o models.NotificationOutcome) int {
		if o.Success {
			return acc + 1
		}
		return acc
	}, 0)
	logger.Info("KPI update processed",
		zap.String("kpi_id", kpiID),
		zap.Float64("value", value),
		zap.Int("notifications_triggered", len(triggered)),
		zap.Int("notifications_sent", sent))

	return &models.KPIUpdateResult{
		Success:                true,
		KPIID:                  kpiID,
		Value:                  value,
		NotificationsTriggered: len(triggered),
		Triggered:              triggered,
	}, nil
}

// checkKPIThresholds walks the enabled preferences for a KPI and returns
// one outcome per triggered preference. Preferences are processed
// sequentially; a failure on one is logged and skipped, the rest of the
// batch continues.
func (k *KPI) checkKPIThresholds(kpiID string, currentValue float64, kpiName string) []models.NotificationOutcome {
	logger := common.GetLoggerWith(
		common.LoggerNameKPICore,
		zap.String(common.LoggerFieldKPICategory, common.LoggerCategoryKPIMonitor),
	)

	var outcomes []models.NotificationOutcome

	if k.Preference == nil || k.History == nil || k.Delivery == nil {
		logger.Error("Monitor collaborators not available, skipping threshold checks",
			zap.String("kpi_id", kpiID))
		return outcomes
	}

	if kpiName == "" {
		kpiName = kpiID
		if k.Metric != nil {
			if metric, err := k.Metric.GetKPI(kpiID); err == nil && metric.Name != "" {
				kpiName = metric.Name
			}
		}
	}

	prefs, err := k.Preference.FindEnabledByKPI(kpiID)
	if err != nil {
		logger.Error("Failed to load notification preferences",
			zap.String("kpi_id", kpiID), zap.Error(err))
		return outcomes
	}

	now := time.Now().UTC()

	for _, pref := range prefs {
		eligible, err := MayNotify(pref.LastNotified, pref.CooldownHours, now)
		if err != nil {
			// fail-closed: a corrupted stamp silences the preference, so
			// keep it loud in the logs every cycle
			logger.Warn("Skipping preference with unparseable last_notified",
				zap.Uint("preference_id", pref.ID),
				zap.String("user_id", pref.UserID),
				zap.Error(err))
			continue
		}
		if !eligible {
			logger.Debug("Preference still in cooldown",
				zap.Uint("preference_id", pref.ID),
				zap.String("user_id", pref.UserID))
			continue
		}

		op, known := ParseOperator(pref.ThresholdOperator)
		if !known {
			logger.Warn("Invalid threshold operator, defaulting to less_than",
				zap.Uint("preference_id", pref.ID),
				zap.String("operator", pref.ThresholdOperator))
		}

		if !CheckThreshold(currentValue, pref.ThresholdValue, op) {
			continue
		}

		dateRange := pref.DateRange
		if dateRange == "" {
			dateRange = now.Format("January 2006")
		}
		alertFrequency := pref.AlertFrequency
		if alertFrequency == "" {
			alertFrequency = models.DefaultAlertFrequency
		}

		logger.Info("Threshold triggered",
			zap.Uint("preference_id", pref.ID),
			zap.String("kpi_id", kpiID),
			zap.Float64("current_value", currentValue),
			zap.Float64("threshold_value", pref.ThresholdValue),
			zap.String("operator", string(op)))

		sent := k.Delivery.SendKPIAlert(
			pref.Email, kpiName, currentValue, pref.ThresholdValue, dateRange, alertFrequency)

		if !sent {
			// last_notified stays untouched so the preference remains
			// eligible on the next evaluation
			outcomes = append(outcomes, models.NotificationOutcome{
				UserID:  pref.UserID,
				Email:   pref.Email,
				KPIID:   kpiID,
				KPIName: kpiName,
				Success: false,
				Error:   "failed to send alert email",
			})
			continue
		}

		if err := k.Preference.MarkNotified(pref.ID, pref.LastNotified, now); err != nil {
			logger.Error("Failed to advance last_notified",
				zap.Uint("preference_id", pref.ID), zap.Error(err))
		}

		if err := k.History.AppendHistory(&models.NotificationHistory{
			UserID:         pref.UserID,
			KPIID:          kpiID,
			KPIName:        kpiName,
			ThresholdValue: pref.ThresholdValue,
			ActualValue:    currentValue,
			Email:          pref.Email,
			SentAt:         now,
		}); err != nil {
			logger.Error("Failed to record notification history",
				zap.Uint("preference_id", pref.ID), zap.Error(err))
		}

		outcomes = append(outcomes, models.NotificationOutcome{
			UserID:  pref.UserID,
			Email:   pref.Email,
			KPIID:   kpiID,
			KPIName: kpiName,
			Success: true,
		})
	}

	return outcomes
}

type IMonitorImpl struct {
	kpi *KPI
}

func (im *IMonitorImpl) UpdateKPIValue(kpiID string, value float64, kpiName string, dateRange string) (*models.KPIUpdateResult, error) {
	return im.kpi.updateKPIValue(kpiID, value, kpiName, dateRange)
}

func (im *IMonitorImpl) CheckKPIThresholds(kpiID string, currentValue float64, kpiName string) []models.NotificationOutcome {
	return im.kpi.checkKPIThresholds(kpiID, currentValue, kpiName)
}

func (k *KPI) GetIMonitor() IMonitor {
	return &IMonitorImpl{kpi: k}
}
