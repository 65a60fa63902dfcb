package models

import "time"

type ThresholdOperator string

const (
	OperatorLessThan           ThresholdOperator = "less_than"
	OperatorLessThanOrEqual    ThresholdOperator = "less_than_or_equal"
	OperatorGreaterThan        ThresholdOperator = "greater_than"
	OperatorGreaterThanOrEqual ThresholdOperator = "greater_than_or_equal"
	OperatorEqual              ThresholdOperator = "equal"
)

const (
	DefaultCooldownHours  int    = 24
	DefaultAlertFrequency string = "daily"
)

type KPIMetric struct {
	KPIID        string `gorm:"column:kpi_id;primaryKey"`
	Name         string
	Description  string
	Unit         string
	CurrentValue *float64
	DateRange    string
	LastUpdated  *time.Time
	CreatedAt    time.Time

	Preferences []NotificationPreference `gorm:"foreignKey:KPIID;references:KPIID"`
	History     []NotificationHistory    `gorm:"foreignKey:KPIID;references:KPIID"`
}

type NotificationPreference struct {
	ID                uint   `gorm:"primaryKey"`
	UserID            string `gorm:"index"`
	KPIID             string `gorm:"column:kpi_id;index"`
	Email             string
	ThresholdValue    float64
	ThresholdOperator string `gorm:"type:varchar(30)"`
	Enabled           bool
	CooldownHours     int
	AlertFrequency    string
	DateRange         string
	// RFC3339, empty until the first successful notification.
	LastNotified string `gorm:"default:''"`
	CreatedAt    time.Time
}

type NotificationHistory struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         string `gorm:"index"`
	KPIID          string `gorm:"column:kpi_id;index"`
	KPIName        string `gorm:"column:kpi_name"`
	ThresholdValue float64
	ActualValue    float64
	Email          string
	SentAt         time.Time
}

// NotificationOutcome is the per-preference result of one dispatch cycle.
type NotificationOutcome struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	KPIID   string `json:"kpi_id"`
	KPIName string `json:"kpi_name"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// KPIUpdateResult is the envelope returned for one metric-update event.
type KPIUpdateResult struct {
	Success                bool                  `json:"success"`
	KPIID                  string                `json:"kpi_id"`
	Value                  float64               `json:"value"`
	NotificationsTriggered int                   `json:"notifications_triggered"`
	Triggered              []NotificationOutcome `json:"triggered"`
	Error                  string                `json:"error,omitempty"`
}
