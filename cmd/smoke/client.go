package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type TestClient struct {
	baseURL string
	client  *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (tc *TestClient) runAllTests() error {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", tc.testHealthCheck},
		{"User Data", tc.testUserData},
		{"Country", func() bool { return tc.testCountry("Japan") }},
		{"Exchange Rate", func() bool { return tc.testExchangeRate("JPY") }},
		{"News", func() bool { return tc.testNews("Japan") }},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	status, body, ok := tc.get("/health")
	if !ok {
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}
	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testUserData() bool {
	printTestHeader("Testing Composite User Data")

	status, body, ok := tc.get("/api/user-data")
	if !ok {
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		printJSON(body)
		return false
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	for _, field := range []string{"user", "country", "exchangeRates", "news"} {
		if _, ok := payload[field]; !ok {
			printError(fmt.Sprintf("Missing required field: %s", field))
			return false
		}
	}
	for _, field := range []string{"country", "exchangeRates"} {
		if string(payload[field]) == "null" {
			fmt.Printf("%s! %s degraded to null%s\n", colorYellow, field, colorReset)
		}
	}

	printSuccess("Composite response is well formed")
	printJSON(body)
	return true
}

func (tc *TestClient) testCountry(name string) bool {
	printTestHeader(fmt.Sprintf("Testing Country Lookup (%s)", name))
	return tc.expectOK("/api/country/" + url.PathEscape(name))
}

func (tc *TestClient) testExchangeRate(code string) bool {
	printTestHeader(fmt.Sprintf("Testing Exchange Rates (%s)", code))
	return tc.expectOK("/api/exchange-rate/" + url.PathEscape(code))
}

func (tc *TestClient) testNews(country string) bool {
	printTestHeader(fmt.Sprintf("Testing News (%s)", country))
	return tc.expectOK("/api/news/" + url.PathEscape(country))
}

func (tc *TestClient) expectOK(path string) bool {
	status, body, ok := tc.get(path)
	if !ok {
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		printJSON(body)
		return false
	}

	printSuccess("Request succeeded")
	printJSON(body)
	return true
}

func (tc *TestClient) get(path string) (int, []byte, bool) {
	target := tc.baseURL + path
	fmt.Printf("GET %s\n", target)

	resp, err := tc.client.Get(target)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return 0, nil, false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		printError(fmt.Sprintf("Failed to read body: %v", err))
		return 0, nil, false
	}
	return resp.StatusCode, body, true
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
	}
}
