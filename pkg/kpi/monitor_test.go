package kpi

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/kpi-alerts-service/pkg/common"
	"liyu1981.xyz/kpi-alerts-service/pkg/models"
	_ "liyu1981.xyz/kpi-alerts-service/pkg/testing"
)

func seedKPI(t *testing.T, kpiObj *KPI, kpiID, name string) {
	t.Helper()
	err := kpiObj.Metric.CreateKPI(&models.KPIMetric{
		KPIID: kpiID,
		Name:  name,
		Unit:  "%",
	})
	require.NoError(t, err)
}

func seedPreference(t *testing.T, kpiObj *KPI, kpiID, userID string, threshold float64, operator string) *models.NotificationPreference {
	t.Helper()
	pref := &models.NotificationPreference{
		UserID:            userID,
		KPIID:             kpiID,
		Email:             fmt.Sprintf("%s@example.com", userID),
		ThresholdValue:    threshold,
		ThresholdOperator: operator,
		Enabled:           true,
	}
	require.NoError(t, kpiObj.Preference.CreatePreference(pref))
	return pref
}

func TestUpdateKPIValue_TriggersNotification(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, kpiObj, _, _, _, _, mockDelivery := GetMockKPIWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	kpiID := uuid.NewString()
	userID := uuid.NewString()

	seedKPI(t, kpiObj, kpiID, "Poverty Rate")
	pref := seedPreference(t, kpiObj, kpiID, userID, 15.0, string(models.OperatorLessThan))

	mockDelivery.
		EXPECT().
		SendKPIAlert(gomock.Eq(pref.Email), gomock.Eq("Poverty Rate"), gomock.Eq(12.0), gomock.Eq(15.0), gomock.Any(), gomock.Eq("daily")).
		Return(true).
		Times(1)

	result, err := kpiObj.Monitor.UpdateKPIValue(kpiID, 12.0, "", "January 2026")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.NotificationsTriggered)
	require.Len(t, result.Triggered, 1)
	assert.True(t, result.Triggered[0].Success)
	assert.Equal(t, userID, result.Triggered[0].UserID)
	assert.Equal(t, pref.Email, result.Triggered[0].Email)

	// last_notified advanced to a parseable stamp
	var saved models.NotificationPreference
	require.NoError(t, kpiObj.Db.Conn.First(&saved, "id = ?", pref.ID).Error)
	require.NotEmpty(t, saved.LastNotified)
	_, err = time.Parse(time.RFC3339, saved.LastNotified)
	assert.NoError(t, err)

	// exactly one history record for the delivery
	records, err := kpiObj.History.ListHistory(userID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, kpiID, records[0].KPIID)
	assert.Equal(t, "Poverty Rate", records[0].KPIName)
	assert.Equal(t, 15.0, records[0].ThresholdValue)
	assert.Equal(t, 12.0, records[0].ActualValue)
	assert.Equal(t, pref.Email, records[0].Email)

	// metric value persisted
	metric, err := kpiObj.Metric.GetKPI(kpiID)
	require.NoError(t, err)
	require.NotNil(t, metric.CurrentValue)
	assert.Equal(t, 12.0, *metric.CurrentValue)
	assert.Equal(t, "January 2026", metric.DateRange)
	require.NotNil(t, metric.LastUpdated)
}

func TestUpdateKPIValue_CooldownGatesSecondEvaluation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, kpiObj, _, _, _, _, mockDelivery := GetMockKPIWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	kpiID := uuid.NewString()
	userID := uuid.NewString()

	seedKPI(t, kpiObj, kpiID, "Poverty Rate")
	seedPreference(t, kpiObj, kpiID, userID, 15.0, string(models.OperatorLessThan))

	mockDelivery.
		EXPECT().
		SendKPIAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true).
		Times(1)

	result, err := kpiObj.Monitor.UpdateKPIValue(kpiID, 12.0, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.NotificationsTriggered)

	// an hour later the value is still below threshold, but the 24h
	// cooldown gates the preference: no second send, no second record
	result, err = kpiObj.Monitor.UpdateKPIValue(kpiID, 11.0, "", "")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.NotificationsTriggered)

	records, err := kpiObj.History.ListHistory(userID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestUpdateKPIValue_EligibleAgainAfterCooldown(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, kpiObj, _, _, _, _, mockDelivery := GetMockKPIWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	kpiID := uuid.NewString()
	userID := uuid.NewString()

	seedKPI(t, kpiObj, kpiID, "Poverty Rate")
	pref := seedPreference(t, kpiObj, kpiID, userID, 15.0, string(models.OperatorLessThan))

	// backdate last_notified past the cooldown window
	stale := time.Now().UTC().Add(-25 * time.Hour).Format(time.RFC3339)
	require.NoError(t, kpiObj.Db.Conn.
		Model(&models.NotificationPreference{}).
		Where("id = ?", pref.ID).
		Update("last_notified", stale).Error)

	mockDelivery.
		EXPECT().
		SendKPIAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true).
		Times(1)

	result, err := kpiObj.Monitor.UpdateKPIValue(kpiID, 12.0, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.NotificationsTriggered)

	var saved models.NotificationPreference
	require.NoError(t, kpiObj.Db.Conn.First(&saved, "id = ?", pref.ID).Error)
	assert.NotEqual(t, stale, saved.LastNotified)
}

func TestUpdateKPIValue_DeliveryFailureKeepsPreferenceEligible(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, kpiObj, _, _, _, _, mockDelivery := GetMockKPIWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	kpiID := uuid.NewString()
	userID := uuid.NewString()

	seedKPI(t, kpiObj, kpiID, "Poverty Rate")
	pref := seedPreference(t, kpiObj, kpiID, userID, 15.0, string(models.OperatorLessThan))

	mockDelivery.
		EXPECT().
		SendKPIAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false).
		Times(1)

	result, err := kpiObj.Monitor.UpdateKPIValue(kpiID, 12.0, "", "")
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, result.Triggered, 1)
	assert.False(t, result.Triggered[0].Success)
	assert.NotEmpty(t, result.Triggered[0].Error)

	// no history for a failed send, no false cooldown
	records, err := kpiObj.History.ListHistory(userID)
	require.NoError(t, err)
	assert.Len(t, records, 0)

	var saved models.NotificationPreference
	require.NoError(t, kpiObj.Db.Conn.First(&saved, "id = ?", pref.ID).Error)
	assert.Empty(t, saved.LastNotified)

	// the very next evaluation retries
	mockDelivery.
		EXPECT().
		SendKPIAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true).
		Times(1)

	result, err = kpiObj.Monitor.UpdateKPIValue(kpiID, 12.0, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.NotificationsTriggered)
	assert.True(t, result.Triggered[0].Success)
}

func TestCheckKPIThresholds_BogusOperatorFallsBackToLessThan(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, kpiObj, _, _, _, _, mockDelivery := GetMockKPIWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	kpiID := uuid.NewString()
	userID := uuid.NewString()

	seedKPI(t, kpiObj, kpiID, "Poverty Rate")

	// write the malformed operator directly, the store boundary would
	// normalize it
	pref := &models.NotificationPreference{
		UserID:            userID,
		KPIID:             kpiID,
		Email:             "bogus@example.com",
		ThresholdValue:    15.0,
		ThresholdOperator: "bogus_operator",
		Enabled:           true,
		CooldownHours:     24,
		AlertFrequency:    "daily",
	}
	require.NoError(t, kpiObj.Db.Conn.Create(pref).Error)

	mockDelivery.
		EXPECT().
		SendKPIAlert(gomock.Any(), gomock.Any(), gomock.Eq(12.0), gomock.Eq(15.0), gomock.Any(), gomock.Any()).
		Return(true).
		Times(1)

	outcomes := kpiObj.Monitor.CheckKPIThresholds(kpiID, 12.0, "Poverty Rate")
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Success)

	logs := ParseLogs(buf)
	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["category"] == "monitor" &&
			lobj["logger"] == "kpi_core" &&
			lobj["msg"] == "Invalid threshold operator, defaulting to less_than" &&
			lobj["operator"] == "bogus_operator" {
			found = true
		}
	}
	assert.True(t, found, "fallback warning not logged")
}

func TestCheckKPIThresholds_MalformedLastNotifiedIsSkipped(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, kpiObj, _, _, _, _, _ := GetMockKPIWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	kpiID := uuid.NewString()
	userID := uuid.NewString()

	seedKPI(t, kpiObj, kpiID, "Poverty Rate")

	pref := &models.NotificationPreference{
		UserID:            userID,
		KPIID:             kpiID,
		Email:             "corrupted@example.com",
		ThresholdValue:    15.0,
		ThresholdOperator: string(models.OperatorLessThan),
		Enabled:           true,
		CooldownHours:     24,
		LastNotified:      "garbage-stamp",
	}
	require.NoError(t, kpiObj.Db.Conn.Create(pref).Error)

	// no SendKPIAlert expectation: any delivery attempt fails the test
	outcomes := kpiObj.Monitor.CheckKPIThresholds(kpiID, 12.0, "Poverty Rate")
	assert.Len(t, outcomes, 0)

	logs := ParseLogs(buf)
	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["category"] == "monitor" &&
			lobj["msg"] == "Skipping preference with unparseable last_notified" &&
			lobj["user_id"] == userID {
			found = true
		}
	}
	assert.True(t, found, "fail-closed warning not logged")
}

func TestCheckKPIThresholds_KPINameFallsBackToID(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, kpiObj, _, _, _, _, mockDelivery := GetMockKPIWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	kpiID := uuid.NewString()
	userID := uuid.NewString()

	// KPI row exists but carries no display name
	seedKPI(t, kpiObj, kpiID, "")
	seedPreference(t, kpiObj, kpiID, userID, 15.0, string(models.OperatorLessThan))

	mockDelivery.
		EXPECT().
		SendKPIAlert(gomock.Any(), gomock.Eq(kpiID), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true).
		Times(1)

	outcomes := kpiObj.Monitor.CheckKPIThresholds(kpiID, 12.0, "")
	require.Len(t, outcomes, 1)
	assert.Equal(t, kpiID, outcomes[0].KPIName)
}

func TestCheckKPIThresholds_NotTriggeredAboveThreshold(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, kpiObj, _, _, _, _, _ := GetMockKPIWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	kpiID := uuid.NewString()
	userID := uuid.NewString()

	seedKPI(t, kpiObj, kpiID, "Poverty Rate")
	seedPreference(t, kpiObj, kpiID, userID, 15.0, string(models.OperatorLessThan))

	outcomes := kpiObj.Monitor.CheckKPIThresholds(kpiID, 16.0, "Poverty Rate")
	assert.Len(t, outcomes, 0)
}

func TestUpdateKPIValue_PersistFailureAbortsEvent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, kpiObj, mockMetric, _, _, _, _ := GetMockKPIWithMemorySqliteDialector(t, true, false, false, false)
	defer ctrl.Finish()

	kpiID := uuid.NewString()

	mockMetric.
		EXPECT().
		UpsertKPIValue(gomock.Eq(kpiID), gomock.Eq(12.0), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("disk full")).
		Times(1)

	// no preference lookup, no delivery attempt
	result, err := kpiObj.Monitor.UpdateKPIValue(kpiID, 12.0, "", "")
	require.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "disk full")
	assert.Equal(t, 0, result.NotificationsTriggered)
}

func TestUpdateKPIValue_NoMetricService(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, kpiObj, _, _, _, _, _ := GetMockKPIWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	kpiObj.Metric = nil

	_, err := kpiObj.Monitor.UpdateKPIValue(uuid.NewString(), 1.0, "", "")
	require.Error(t, err, "metric service not available")
}
