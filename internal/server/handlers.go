package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/agbru/ntmul/internal/bigmul"
	apperrors "github.com/agbru/ntmul/internal/errors"
	"github.com/agbru/ntmul/pkg/models"
)

// handleHealth responds to health check requests with a 200 OK status
// and a JSON payload indicating the service is healthy.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	s.writeJSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Unix(),
	})
}

// handleMultiply processes multiplication requests. It decodes the
// JSON body, runs the engine under the request timeout, and returns
// the product or a classified error.
//
// The engine call always validates operands: the HTTP boundary is
// untrusted input by definition, so the request's Validate field
// cannot turn the check off.
func (s *Server) handleMultiply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	var req models.MultiplyRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	s.runEngine(w, r, "multiply", func() (string, error) {
		return bigmul.MultiplyWithOptions(req.A, req.B, s.engineOptions())
	})
}

// handleSquare processes squaring requests; see handleMultiply.
func (s *Server) handleSquare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	var req models.SquareRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	s.runEngine(w, r, "square", func() (string, error) {
		return bigmul.SquareWithOptions(req.X, s.engineOptions())
	})
}

// engineOptions derives the engine options for API calls.
func (s *Server) engineOptions() bigmul.Options {
	return bigmul.Options{
		Validate:          true,
		ParallelThreshold: s.cfg.ParallelThreshold,
	}
}

// decodeRequest reads and decodes a JSON body, bounded by
// MaxRequestBodyBytes. Returns false if a response was already written.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error(), "")
		return false
	}
	return true
}

// runEngine executes one engine call under the request timeout and
// writes the response. The engine has no suspension points, so a
// timeout abandons the goroutine; its buffers are reclaimed when it
// finishes in the background.
func (s *Server) runEngine(w http.ResponseWriter, r *http.Request, operation string, call func() (string, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	type outcome struct {
		product string
		err     error
	}
	ch := make(chan outcome, 1)

	start := time.Now()
	go func() {
		product, err := call()
		ch <- outcome{product, err}
	}()

	select {
	case <-ctx.Done():
		s.metrics.ObserveMultiplication(operation, "error", 0)
		s.writeErrorResponse(w, http.StatusGatewayTimeout, "Calculation timed out", "timeout")
		return
	case oc := <-ch:
		duration := time.Since(start)
		if oc.err != nil {
			status, kind := classifyEngineError(oc.err)
			s.metrics.ObserveMultiplication(operation, outcomeForKind(kind), duration)
			s.writeErrorResponse(w, status, oc.err.Error(), kind)
			return
		}
		s.metrics.ObserveMultiplication(operation, "ok", duration)
		s.writeJSONResponse(w, http.StatusOK, models.MultiplyResponse{
			Product:    oc.product,
			Digits:     len(oc.product),
			DurationMS: duration.Milliseconds(),
		})
	}
}

// classifyEngineError maps engine errors to HTTP statuses and the
// error-kind labels of the API contract.
func classifyEngineError(err error) (int, string) {
	var invalidErr apperrors.InvalidOperandError
	if errors.As(err, &invalidErr) {
		return http.StatusBadRequest, "invalid_operand"
	}
	var tooLargeErr apperrors.OperandTooLargeError
	if errors.As(err, &tooLargeErr) {
		return http.StatusRequestEntityTooLarge, "operand_too_large"
	}
	var convErr apperrors.ConvolutionTooLargeError
	if errors.As(err, &convErr) {
		return http.StatusRequestEntityTooLarge, "convolution_too_large"
	}
	return http.StatusInternalServerError, "internal"
}

// outcomeForKind maps an error kind to its metrics outcome label.
// Client-induced rejections count as "rejected"; everything else is
// an engine-side "error".
func outcomeForKind(kind string) string {
	switch kind {
	case "invalid_operand", "operand_too_large", "convolution_too_large":
		return "rejected"
	default:
		return "error"
	}
}

// writeJSONResponse writes a JSON payload with the given status code.
func (s *Server) writeJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", err)
	}
}

// writeErrorResponse writes a JSON error envelope with the given
// status code and optional error kind.
func (s *Server) writeErrorResponse(w http.ResponseWriter, status int, message, kind string) {
	s.writeJSONResponse(w, status, models.ErrorResponse{Error: message, Kind: kind})
}
