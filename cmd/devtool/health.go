package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "http://localhost:8080"
	healthCheckTimeout = 5 * time.Second
	slowResponse       = 1 * time.Second
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running " + appName + " API: health-check [base-url]"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := defaultBaseURL
	if len(args) > 0 {
		baseURL = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	client := &http.Client{Timeout: healthCheckTimeout}
	for _, path := range []string{"/healthz", "/readyz"} {
		duration, err := checkEndpoint(client, baseURL, path)
		if err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		if duration > slowResponse {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, duration)
		}
	}
	return nil
}

func checkEndpoint(client *http.Client, baseURL, path string) (time.Duration, error) {
	start := time.Now()
	resp, err := client.Get(strings.TrimRight(baseURL, "/") + path)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("status code %d", resp.StatusCode)
	}
	return time.Since(start), nil
}
