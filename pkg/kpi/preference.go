package kpi

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/kpi-alerts-service/pkg/common"
	"liyu1981.xyz/kpi-alerts-service/pkg/models"
)

// ErrStaleNotifiedStamp means last_notified moved between the read and the
// conditional write, i.e. another dispatch already claimed the cooldown
// window for this preference.
var ErrStaleNotifiedStamp = fmt.Errorf("last_notified changed since evaluation")

func (k *KPI) createPreference(input *models.NotificationPreference) error {
	logger := common.GetLoggerWith(
		common.LoggerNameKPICore,
		zap.String(common.LoggerFieldKPICategory, common.LoggerCategoryKPIPreference),
	)

	pref := models.NotificationPreference{
		UserID:            input.UserID,
		KPIID:             input.KPIID,
		Email:             input.Email,
		ThresholdValue:    input.ThresholdValue,
		ThresholdOperator: input.ThresholdOperator,
		Enabled:           input.Enabled,
		CooldownHours:     input.CooldownHours,
		AlertFrequency:    input.AlertFrequency,
		DateRange:         input.DateRange,
	}

	// store-boundary defaults, malformed records are not let through to
	// evaluation time
	if pref.CooldownHours <= 0 {
		pref.CooldownHours = models.DefaultCooldownHours
	}
	if pref.AlertFrequency == "" {
		pref.AlertFrequency = models.DefaultAlertFrequency
	}
	if pref.ThresholdOperator == "" {
		pref.ThresholdOperator = string(models.OperatorLessThan)
	}

	logger.Info("Received notification preference", zap.Reflect("preference", pref))

	if err := k.Db.Conn.Create(&pref).Error; err != nil {
		return err
	}
	input.ID = pref.ID
	input.CooldownHours = pref.CooldownHours
	input.AlertFrequency = pref.AlertFrequency
	input.ThresholdOperator = pref.ThresholdOperator

	logger.Info("Created notification preference",
		zap.Uint("preference_id", pref.ID),
		zap.String("kpi_id", pref.KPIID),
		zap.String("user_id", pref.UserID))
	return nil
}

func (k *KPI) listPreferences(userID string) ([]models.NotificationPreference, error) {
	var prefs []models.NotificationPreference
	err := k.Db.Conn.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&prefs).Error
	return prefs, err
}

func (k *KPI) deletePreference(id uint, userID string) error {
	res := k.Db.Conn.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.NotificationPreference{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (k *KPI) findEnabledByKPI(kpiID string) ([]models.NotificationPreference, error) {
	var prefs []models.NotificationPreference
	err := k.Db.Conn.
		Where("kpi_id = ? AND enabled = ?", kpiID, true).
		Find(&prefs).Error
	return prefs, err
}

func (k *KPI) markNotified(preferenceID uint, prevStamp string, at time.Time) error {
	res := k.Db.Conn.
		Model(&models.NotificationPreference{}).
		Where("id = ? AND last_notified = ?", preferenceID, prevStamp).
		Update("last_notified", at.UTC().Format(time.RFC3339))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleNotifiedStamp
	}
	return nil
}

type IPreferenceImpl struct {
	kpi *KPI
}

func (ip *IPreferenceImpl) CreatePreference(input *models.NotificationPreference) error {
	return ip.kpi.createPreference(input)
}

func (ip *IPreferenceImpl) ListPreferences(userID string) ([]models.NotificationPreference, error) {
	return ip.kpi.listPreferences(userID)
}

func (ip *IPreferenceImpl) DeletePreference(id uint, userID string) error {
	return ip.kpi.deletePreference(id, userID)
}

func (ip *IPreferenceImpl) FindEnabledByKPI(kpiID string) ([]models.NotificationPreference, error) {
	return ip.kpi.findEnabledByKPI(kpiID)
}

func (ip *IPreferenceImpl) MarkNotified(preferenceID uint, prevStamp string, at time.Time) error {
	return ip.kpi.markNotified(preferenceID, prevStamp, at)
}

func (k *KPI) GetIPreference() IPreference {
	return &IPreferenceImpl{kpi: k}
}
