package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/agbru/ntmul/internal/config"
	"github.com/agbru/ntmul/pkg/models"
)

// newTestServer builds a server with logging discarded.
func newTestServer(opts ...Option) *Server {
	cfg := config.AppConfig{Port: "8080", Timeout: time.Minute}
	opts = append([]Option{WithStdLogger(log.New(io.Discard, "", 0))}, opts...)
	return NewServer(cfg, opts...)
}

func postJSON(t *testing.T, s *Server, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var errResp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("invalid error body %q: %v", rec.Body.String(), err)
	}
	return errResp
}

func TestHandleMultiply(t *testing.T) {
	t.Parallel()
	s := newTestServer()

	t.Run("successful multiplication", func(t *testing.T) {
		t.Parallel()
		rec := postJSON(t, s, "/api/v1/multiply", models.MultiplyRequest{A: "123", B: "456"})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
		}

		var resp models.MultiplyResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body %q: %v", rec.Body.String(), err)
		}
		if resp.Product != "56088" {
			t.Errorf("product = %q, want \"56088\"", resp.Product)
		}
		if resp.Digits != 5 {
			t.Errorf("digits = %d, want 5", resp.Digits)
		}
	})

	t.Run("carry cascade", func(t *testing.T) {
		t.Parallel()
		rec := postJSON(t, s, "/api/v1/multiply", models.MultiplyRequest{
			A: "999999999999", B: "999999999999",
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
		}
		var resp models.MultiplyResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Product != "999999999998000000000001" {
			t.Errorf("product = %q", resp.Product)
		}
	})

	t.Run("invalid operand returns 400", func(t *testing.T) {
		t.Parallel()
		rec := postJSON(t, s, "/api/v1/multiply", models.MultiplyRequest{A: "12a", B: "5"})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if errResp := decodeError(t, rec); errResp.Kind != "invalid_operand" {
			t.Errorf("kind = %q, want \"invalid_operand\"", errResp.Kind)
		}
	})

	t.Run("validation cannot be disabled by the client", func(t *testing.T) {
		t.Parallel()
		rec := postJSON(t, s, "/api/v1/multiply", models.MultiplyRequest{A: "12a", B: "5", Validate: false})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/multiply", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		s.httpServer.Handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("GET is rejected", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/multiply", nil)
		rec := httptest.NewRecorder()
		s.httpServer.Handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})
}

func TestHandleSquare(t *testing.T) {
	t.Parallel()
	s := newTestServer()

	t.Run("successful squaring", func(t *testing.T) {
		t.Parallel()
		rec := postJSON(t, s, "/api/v1/square", models.SquareRequest{X: "111111111"})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
		}
		var resp models.MultiplyResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Product != "12345678987654321" {
			t.Errorf("product = %q", resp.Product)
		}
	})

	t.Run("square of zero", func(t *testing.T) {
		t.Parallel()
		rec := postJSON(t, s, "/api/v1/square", models.SquareRequest{X: "0"})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
		}
		var resp models.MultiplyResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Product != "0" {
			t.Errorf("product = %q, want \"0\"", resp.Product)
		}
	})

	t.Run("invalid operand returns 400", func(t *testing.T) {
		t.Parallel()
		rec := postJSON(t, s, "/api/v1/square", models.SquareRequest{X: ""})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if errResp := decodeError(t, rec); errResp.Kind != "invalid_operand" {
			t.Errorf("kind = %q, want \"invalid_operand\"", errResp.Kind)
		}
	})
}

func TestHandleHealth(t *testing.T) {
	t.Parallel()
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var health models.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("invalid body %q: %v", rec.Body.String(), err)
	}
	if health.Status != "healthy" {
		t.Errorf("status = %q, want \"healthy\"", health.Status)
	}
	if health.Timestamp == 0 {
		t.Error("expected a non-zero timestamp")
	}
}

func TestHandleMetrics(t *testing.T) {
	t.Parallel()
	s := newTestServer()

	// Generate some traffic first so the counters exist.
	postJSON(t, s, "/api/v1/multiply", models.MultiplyRequest{A: "2", B: "3"})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ntmul_requests_total") {
		t.Error("expected ntmul_requests_total in metrics output")
	}
}

func TestOutcomeForKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind string
		want string
	}{
		{"invalid_operand", "rejected"},
		{"operand_too_large", "rejected"},
		{"convolution_too_large", "rejected"},
		{"internal", "error"},
		{"timeout", "error"},
	}
	for _, tt := range tests {
		if got := outcomeForKind(tt.kind); got != tt.want {
			t.Errorf("outcomeForKind(%q) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestRequestTimeout(t *testing.T) {
	t.Parallel()

	// A zero-ish request timeout forces the timeout branch even for a
	// trivial multiplication.
	timeouts := DefaultServerTimeouts()
	timeouts.RequestTimeout = time.Nanosecond
	s := newTestServer(WithTimeouts(timeouts))

	rec := postJSON(t, s, "/api/v1/multiply", models.MultiplyRequest{A: "123", B: "456"})
	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want 504", rec.Code)
	}
	if errResp := decodeError(t, rec); errResp.Kind != "timeout" {
		t.Errorf("kind = %q, want \"timeout\"", errResp.Kind)
	}
}

func TestConcurrentRequests(t *testing.T) {
	t.Parallel()
	s := newTestServer()

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := postJSON(t, s, "/api/v1/multiply", models.MultiplyRequest{A: "123456789", B: "987654321"})
			if rec.Code != http.StatusOK {
				errs <- rec.Body.String()
				return
			}
			var resp models.MultiplyResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Product != "121932631112635269" {
				errs <- rec.Body.String()
			}
		}()
	}
	wg.Wait()
	close(errs)

	for body := range errs {
		t.Errorf("concurrent request failed: %s", body)
	}
}

func TestShutdown(t *testing.T) {
	t.Parallel()

	cfg := config.AppConfig{Port: "0", Timeout: time.Minute}
	s := NewServer(cfg, WithStdLogger(log.New(io.Discard, "", 0)))

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	// Give the listener a moment, then trigger a graceful shutdown.
	time.Sleep(50 * time.Millisecond)
	s.Shutdown()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start returned error on graceful shutdown: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}
