package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxKPIs int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	kpiIDs := make([]string, maxKPIs)
	for i := range maxKPIs {
		kpiIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v KPI IDs\n", maxKPIs)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxKPIs {
		wg.Add(1)
		go func() {
			createKPI(kpiIDs[i])
			fmt.Printf("\rcreated KPI %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v KPIs: used time=%v seconds, throughput=%v action/second\n",
		maxKPIs, usedTime.Seconds(), float64(maxKPIs)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxKPIs {
		wg.Add(1)
		go func() {
			doAction(kpiIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v KPIs: used time=%v seconds, throughput=%v action/second\n",
		maxKPIs, usedTime.Seconds(), float64(maxKPIs*3)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func createKPI(kpiID string) {
	payload := map[string]string{
		"kpi_id": kpiID,
		"name":   fmt.Sprintf("benchmark KPI %s", kpiID[:8]),
		"unit":   "percent",
	}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/kpis", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
}

func doAction(kpiID string) {
	actions := []func(){
		genUpdateValueAction(kpiID),
		genGetKPIAction(kpiID),
		genUpdateValueAction(kpiID),
	}
	actionNames := []string{
		"UpdateValue",
		"GetKPI",
		"UpdateValue",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for KPI %v", actionNames[index], kpiID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genUpdateValueAction(kpiID string) func() {
	return func() {
		v := rndFloat64(0.0, 100.0, 2)
		payload := map[string]any{
			"value":      v,
			"date_range": time.Now().Format("January 2006"),
		}
		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/kpis/%s/update", httpHostPort, kpiID), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genGetKPIAction(kpiID string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/kpis/%s", httpHostPort, kpiID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
