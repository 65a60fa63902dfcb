package kpi

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"liyu1981.xyz/kpi-alerts-service/pkg/db"
	"liyu1981.xyz/kpi-alerts-service/pkg/kpi/mocks"
)

func GetMockKPIWithMemorySqliteDialector(t *testing.T, useMockMetric, useMockMonitor, useMockPreference, useMockHistory bool) (
	*gomock.Controller,
	*KPI,
	*mocks.MockIMetric,
	*mocks.MockIMonitor,
	*mocks.MockIPreference,
	*mocks.MockIHistory,
	*mocks.MockIDelivery,
) {
	ctrl := gomock.NewController(t)

	mockIMetric := mocks.NewMockIMetric(ctrl)
	mockIMonitor := mocks.NewMockIMonitor(ctrl)
	mockIPreference := mocks.NewMockIPreference(ctrl)
	mockIHistory := mocks.NewMockIHistory(ctrl)
	mockIDelivery := mocks.NewMockIDelivery(ctrl)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	kpiInstance := (&KPI{Db: *dbInstance})

	metricService := kpiInstance.GetIMetric()
	if useMockMetric {
		metricService = mockIMetric
	}

	monitorService := kpiInstance.GetIMonitor()
	if useMockMonitor {
		monitorService = mockIMonitor
	}

	preferenceService := kpiInstance.GetIPreference()
	if useMockPreference {
		preferenceService = mockIPreference
	}

	historyService := kpiInstance.GetIHistory()
	if useMockHistory {
		historyService = mockIHistory
	}

	kpiInstance.WithServices(ServiceOpts{
		Metric:     metricService,
		Monitor:    monitorService,
		Preference: preferenceService,
		History:    historyService,
		Delivery:   mockIDelivery, // delivery is always mocked in unit tests
	})

	return ctrl, kpiInstance, mockIMetric, mockIMonitor, mockIPreference, mockIHistory, mockIDelivery
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
