package kpi

import (
	"time"

	"liyu1981.xyz/kpi-alerts-service/pkg/db"
	"liyu1981.xyz/kpi-alerts-service/pkg/models"
)

type IMetric interface {
	CreateKPI(input *models.KPIMetric) error
	GetKPI(kpiID string) (*models.KPIMetric, error)
	ListKPIs() ([]models.KPIMetric, error)
	UpsertKPIValue(kpiID string, value float64, dateRange string, at time.Time) error
}

type IMonitor interface {
	UpdateKPIValue(kpiID string, value float64, kpiName string, dateRange string) (*models.KPIUpdateResult, error)
	CheckKPIThresholds(kpiID string, currentValue float64, kpiName string) []models.NotificationOutcome
}

type IPreference interface {
	CreatePreference(input *models.NotificationPreference) error
	ListPreferences(userID string) ([]models.NotificationPreference, error)
	DeletePreference(id uint, userID string) error
	FindEnabledByKPI(kpiID string) ([]models.NotificationPreference, error)
	MarkNotified(preferenceID uint, prevStamp string, at time.Time) error
}

type IHistory interface {
	AppendHistory(record *models.NotificationHistory) error
	ListHistory(userID string) ([]models.NotificationHistory, error)
}

// IDelivery is the message delivery collaborator. SendKPIAlert reports
// delivery success only; there is no partial-success state.
type IDelivery interface {
	SendKPIAlert(toEmail string, kpiName string, currentValue float64, thresholdValue float64, dateRange string, alertFrequency string) bool
}

type KPI struct {
	Db         db.DB
	Metric     IMetric
	Monitor    IMonitor
	Preference IPreference
	History    IHistory
	Delivery   IDelivery
}

type ServiceOpts struct {
	Metric     IMetric
	Monitor    IMonitor
	Preference IPreference
	History    IHistory
	Delivery   IDelivery
}

func (k *KPI) WithServices(opts ServiceOpts) *KPI {
	if opts.Metric != nil {
		k.Metric = opts.Metric
	}
	if opts.Monitor != nil {
		k.Monitor = opts.Monitor
	}
	if opts.Preference != nil {
		k.Preference = opts.Preference
	}
	if opts.History != nil {
		k.History = opts.History
	}
	if opts.Delivery != nil {
		k.Delivery = opts.Delivery
	}
	return k
}
