package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/kpi-alerts-service/pkg/common"
	"liyu1981.xyz/kpi-alerts-service/pkg/db"
	kpiHttp "liyu1981.xyz/kpi-alerts-service/pkg/http"
	"liyu1981.xyz/kpi-alerts-service/pkg/kpi"
	"liyu1981.xyz/kpi-alerts-service/pkg/notify"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	kpiDbType := os.Getenv(common.EnvKeyKPIDBType)
	switch kpiDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown KPI_DB_TYPE: " + kpiDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyKPIHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyKPIDefaultRate), 64); err != nil {
		log.Fatal("Invalid KPI_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyKPIDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid KPI_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	smtpUrl := strings.TrimSpace(os.Getenv(common.EnvKeyKPIAlertSmtpUrl))
	if smtpUrl == "" {
		log.Fatal("KPI_ALERT_SMTP_URL not set in .env, should be a shoutrrr smtp url with a {to} placeholder")
	}

	sendTimeout := 10 * time.Second
	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyKPIAlertSendTimeoutSec)); raw != "" {
		secs, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatal("Invalid KPI_ALERT_SEND_TIMEOUT_SEC, should be an int value")
		}
		sendTimeout = time.Duration(secs) * time.Second
	}

	emailSender, err := notify.NewEmailSender(smtpUrl, sendTimeout)
	if err != nil {
		log.Fatal("Invalid KPI_ALERT_SMTP_URL: ", err)
	}

	logger := common.GetLogger()

	kpiCore := kpi.KPI{
		Db: *dbInstance,
	}
	kpiCore.WithServices(kpi.ServiceOpts{
		Metric:     kpiCore.GetIMetric(),
		Monitor:    kpiCore.GetIMonitor(),
		Preference: kpiCore.GetIPreference(),
		History:    kpiCore.GetIHistory(),
		Delivery:   emailSender,
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &kpiHttp.RestfulServer{
		Server:           gin.Default(),
		Kpi:              &kpiCore,
		RateLimiterStore: kpi.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
