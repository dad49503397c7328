package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("Success_CreateProviderWithNamespace", func(t *testing.T) {
		provider, err := NewProvider("test_app")

		require.NoError(t, err)
		assert.NotNil(t, provider)
		assert.NotNil(t, provider.meterProvider)
		assert.NotNil(t, provider.exporter)
		assert.NotNil(t, provider.registry)
	})

	t.Run("Success_CreateProviderWithEmptyNamespace", func(t *testing.T) {
		provider, err := NewProvider("")

		require.NoError(t, err)
		assert.NotNil(t, provider)
	})
}

func TestProvider_MeterProvider(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	meterProvider := provider.MeterProvider()
	assert.NotNil(t, meterProvider)
}

func TestProvider_Handler(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	handler := provider.Handler()
	assert.NotNil(t, handler)
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success_ShutdownProvider", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)

		err = provider.Shutdown(context.Background())
		assert.NoError(t, err)
	})

	t.Run("Success_ShutdownNilProvider", func(t *testing.T) {
		provider := &Provider{meterProvider: nil}

		err := provider.Shutdown(context.Background())
		assert.NoError(t, err)
	})
}

func TestProvider_HandlerExposesRuntimeCollectors(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestProvider_HandlerExposesServiceName(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	counter, err := provider.MeterProvider().Meter("test").Int64Counter("probe_total")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `service_name="test_app"`)
}
