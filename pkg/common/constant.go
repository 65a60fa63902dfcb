package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyKPIDBType string = "KPI_DB_TYPE"
	EnvKeyKPIDbPath string = "KPI_DB_PATH"

	EnvKeyKPIHttpHostPort string = "KPI_HTTP_HOST_PORT"

	EnvKeyKPIDefaultRate  string = "KPI_DEFAULT_RATE"
	EnvKeyKPIDefaultBurst string = "KPI_DEFAULT_BURST"

	EnvKeyKPIAlertSmtpUrl        string = "KPI_ALERT_SMTP_URL"
	EnvKeyKPIAlertSendTimeoutSec string = "KPI_ALERT_SEND_TIMEOUT_SEC"

	LoggerNameKPICore       string = "kpi_core"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldKPICategory      string = "category"
	LoggerCategoryKPIMetric     string = "metric"
	LoggerCategoryKPIMonitor    string = "monitor"
	LoggerCategoryKPIPreference string = "preference"
	LoggerCategoryKPIHistory    string = "history"
	LoggerCategoryKPIDelivery   string = "delivery"
)
