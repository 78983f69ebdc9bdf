package site

import (
	"bufio"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siso-dis/cdis-gateway/internal/gateway"
)

func testConfig() gateway.Config {
	return gateway.Config{
		Metadata: gateway.Metadata{Name: "test-gateway", Author: "tester", Version: "0.0.1"},
		DIS:      gateway.SocketConfig{Port: 3000},
		CDIS:     gateway.SocketConfig{Port: 3001},
	}
}

func TestHomeServesHTML(t *testing.T) {
	srv := NewServer(testConfig(), gateway.NewStatsBus())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test-gateway")
}

func TestMetaInfoReportsConfiguredMetadata(t *testing.T) {
	srv := NewServer(testConfig(), gateway.NewStatsBus())

	req := httptest.NewRequest(http.MethodGet, "/meta", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"test-gateway"`)
	assert.Contains(t, rec.Body.String(), `"version":"0.0.1"`)
}

func TestConfigInfoReportsEndpoints(t *testing.T) {
	srv := NewServer(testConfig(), gateway.NewStatsBus())

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dis_port":3000`)
	assert.Contains(t, rec.Body.String(), `"cdis_port":3001`)
}

// TestSSEStreamsNamedEvents exercises the contract in spec.md §6: the site
// maps every stats-bus event to an SSE frame named after its StatEdge.
func TestSSEStreamsNamedEvents(t *testing.T) {
	bus := gateway.NewStatsBus()
	srv := NewServer(testConfig(), bus)

	testSrv := httptest.NewServer(srv)
	defer testSrv.Close()

	resp, err := http.Get(testSrv.URL + "/sse")
	require.NoError(t, err)
	defer resp.Body.Close()

	time.Sleep(20 * time.Millisecond)
	bus.Publish(gateway.StatEvent{Edge: gateway.EdgeEncoder, Count: 7})

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	var sawEncoderEvent bool
	deadline := time.After(2 * time.Second)
loop:
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				break loop
			}
			if strings.HasPrefix(line, "event: encoder") {
				sawEncoderEvent = true
				break loop
			}
		case <-deadline:
			break loop
		}
	}
	assert.True(t, sawEncoderEvent, "expected an 'encoder' SSE event")
}
