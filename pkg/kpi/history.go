package kpi

import (
	"go.uber.org/zap"
	"liyu1981.xyz/kpi-alerts-service/pkg/common"
	"liyu1981.xyz/kpi-alerts-service/pkg/models"
)

func (k *KPI) appendHistory(record *models.NotificationHistory) error {
	logger := common.GetLoggerWith(
		common.LoggerNameKPICore,
		zap.String(common.LoggerFieldKPICategory, common.LoggerCategoryKPIHistory),
	)

	if err := k.Db.Conn.Create(record).Error; err != nil {
		return err
	}

	logger.Info("Notification history recorded", zap.Reflect("record", record))
	return nil
}

func (k *KPI) listHistory(userID string) ([]models.NotificationHistory, error) {
	var records []models.NotificationHistory
	err := k.Db.Conn.
		Where("user_id = ?", userID).
		Order("sent_at desc").
		Find(&records).Error
	return records, err
}

type IHistoryImpl struct {
	kpi *KPI
}

func (ih *IHistoryImpl) AppendHistory(record *models.NotificationHistory) error {
	return ih.kpi.appendHistory(record)
}

func (ih *IHistoryImpl) ListHistory(userID string) ([]models.NotificationHistory, error) {
	return ih.kpi.listHistory(userID)
}

func (k *KPI) GetIHistory() IHistory {
	return &IHistoryImpl{kpi: k}
}
