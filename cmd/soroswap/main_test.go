package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/defistate/soroswap-client-go/cmd/soroswap/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/protocols":
			_, _ = io.WriteString(w, `["soroswap","aqua"]`)
		case "/api/testnet/factory":
			_, _ = io.WriteString(w, `{"address":"CFACTORY"}`)
		case "/api/testnet/router":
			_, _ = io.WriteString(w, `{"address":"CROUTER"}`)
		case "/api/testnet/aggregator":
			_, _ = io.WriteString(w, `{"address":"CAGGREGATOR"}`)
		case "/price":
			assert.Equal(t, "network=testnet&asset=A&asset=B", r.URL.RawQuery)
			_, _ = io.WriteString(w, `[{"asset":"A","price":1},{"asset":"B","price":2}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"Not Found"}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	srv := newTestServer(t)
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvAPIKey, "test-key")
	t.Setenv(config.EnvBaseURL, srv.URL)
	t.Setenv(config.EnvNetwork, "")

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.RunContext(context.Background(), append([]string{"soroswap"}, args...))
	return out.String(), err
}

func TestOverviewCommand(t *testing.T) {
	out, err := runApp(t, "--network", "testnet", "overview")
	require.NoError(t, err)

	var result overviewResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "testnet", result.Network)
	assert.Len(t, result.Protocols, 2)
	assert.Equal(t, "CFACTORY", result.Contracts["factory"])
	assert.Equal(t, "CROUTER", result.Contracts["router"])
	assert.Equal(t, "CAGGREGATOR", result.Contracts["aggregator"])
}

func TestPriceCommand(t *testing.T) {
	out, err := runApp(t, "-n", "testnet", "price", "A", "B")
	require.NoError(t, err)
	assert.Contains(t, out, `"asset": "B"`)
}

func TestCommandErrors(t *testing.T) {
	t.Run("should reject a missing argument", func(t *testing.T) {
		_, err := runApp(t, "positions")
		assert.Error(t, err)
	})

	t.Run("should surface API failures", func(t *testing.T) {
		_, err := runApp(t, "--network", "testnet", "pool", "A", "B")
		assert.ErrorContains(t, err, "Not Found")
	})

	t.Run("should reject an unknown network flag", func(t *testing.T) {
		_, err := runApp(t, "--network", "futurenet", "protocols")
		assert.Error(t, err)
	})
}
