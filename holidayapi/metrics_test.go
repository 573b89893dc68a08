package holidayapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/holidayapi/internal/fakeapi"
)

func newRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func TestMetrics(t *testing.T) {
	ctx := context.Background()
	srv := fakeapi.New(testKey)
	defer srv.Close()
	srv.Respond("languages", http.StatusInternalServerError, "boom")

	registry := newRegistry()
	metrics := NewMetrics(registry)
	client := newTestClient(t, srv, WithMetrics(metrics))

	_, err := client.Holidays("us", 2024).Get(ctx)
	require.NoError(t, err)
	_, err = client.Holidays("us", 2025).Get(ctx)
	require.NoError(t, err)
	_, err = client.Languages().Get(ctx)
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requestsTotal.WithLabelValues("holidays", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requestsTotal.WithLabelValues("languages", "500")))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.requestsTotal))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.requestDuration))
}

func TestMetricsTransportError(t *testing.T) {
	metrics := NewMetrics(newRegistry())
	client, err := New(testKey, WithAPIRoot("http://127.0.0.1:1"), WithMetrics(metrics))
	require.NoError(t, err)

	_, err = client.Countries().GetRaw(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requestsTotal.WithLabelValues("countries", "error")))
}
