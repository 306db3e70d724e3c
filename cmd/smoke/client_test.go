package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmokeChecksAgainstFakeServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			_, _ = w.Write([]byte("OK"))
		case "/api/user-data":
			_, _ = w.Write([]byte(`{"user":{},"country":null,"exchangeRates":null,"news":[]}`))
		case "/api/country/New Zealand":
			_, _ = w.Write([]byte(`{"countryName":"New Zealand"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Country not found"}`))
		}
	}))
	defer srv.Close()

	tc := NewTestClient(srv.URL + "/")

	assert.True(t, tc.testHealthCheck())
	assert.True(t, tc.testUserData())
	assert.True(t, tc.testCountry("New Zealand"))
	assert.False(t, tc.testNews("Atlantis"))
}

func TestRootCommandRequiresArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"country"})
	assert.Error(t, cmd.Execute())
}
