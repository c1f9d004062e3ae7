package app

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/ntmul/internal/errors"
	"github.com/agbru/ntmul/internal/testutil"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid arguments", func(t *testing.T) {
		t.Parallel()
		a, err := New([]string{"ntmul", "123", "456"}, io.Discard)
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		if len(a.Config.Operands) != 2 {
			t.Errorf("operands = %v", a.Config.Operands)
		}
	})

	t.Run("missing operands", func(t *testing.T) {
		t.Parallel()
		if _, err := New([]string{"ntmul"}, io.Discard); err == nil {
			t.Error("expected an error for missing operands")
		}
	})

	t.Run("help flag", func(t *testing.T) {
		t.Parallel()
		_, err := New([]string{"ntmul", "-h"}, io.Discard)
		if !IsHelpError(err) {
			t.Errorf("expected a help error, got %v", err)
		}
	})

	t.Run("empty argument list", func(t *testing.T) {
		t.Parallel()
		if _, err := New(nil, io.Discard); err == nil {
			t.Error("expected an error with no arguments at all")
		}
	})
}

func TestRunOneShot(t *testing.T) {
	t.Parallel()

	t.Run("multiplication", func(t *testing.T) {
		t.Parallel()
		a, err := New([]string{"ntmul", "-quiet", "-no-color", "123", "456"}, io.Discard)
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		var out bytes.Buffer
		if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
			t.Fatalf("exit code = %d", code)
		}
		if strings.TrimSpace(testutil.StripAnsiCodes(out.String())) != "56088" {
			t.Errorf("output = %q", out.String())
		}
	})

	t.Run("squaring", func(t *testing.T) {
		t.Parallel()
		a, err := New([]string{"ntmul", "-quiet", "-no-color", "-square", "12"}, io.Discard)
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		var out bytes.Buffer
		if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
			t.Fatalf("exit code = %d", code)
		}
		if strings.TrimSpace(testutil.StripAnsiCodes(out.String())) != "144" {
			t.Errorf("output = %q", out.String())
		}
	})

	t.Run("invalid operand exit code", func(t *testing.T) {
		t.Parallel()
		a, err := New([]string{"ntmul", "-quiet", "-no-color", "12a", "5"}, io.Discard)
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		var out bytes.Buffer
		if code := a.Run(context.Background(), &out); code != apperrors.ExitErrorInvalidOperand {
			t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorInvalidOperand)
		}
	})
}

func TestRunCompletionMode(t *testing.T) {
	t.Parallel()

	a, err := New([]string{"ntmul", "-completion", "bash"}, io.Discard)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), "_ntmul_completions") {
		t.Errorf("expected a bash completion script, got %q", out.String())
	}

	bad, err := New([]string{"ntmul", "-completion", "tcsh"}, io.Discard)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if code := bad.Run(context.Background(), io.Discard); code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
}

func TestSetupLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("timeout cancels the context", func(t *testing.T) {
		t.Parallel()
		ctx, cancels := SetupLifecycle(context.Background(), 10*time.Millisecond)
		defer cancels.Cleanup()

		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Fatal("context was not canceled by the timeout")
		}
	})

	t.Run("cleanup is idempotent and nil-safe", func(t *testing.T) {
		t.Parallel()
		_, cancels := SetupLifecycle(context.Background(), time.Minute)
		cancels.Cleanup()
		cancels.Cleanup()

		empty := &CancelFuncs{}
		empty.Cleanup()
	})

	t.Run("SetupContext applies the deadline", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := SetupContext(context.Background(), time.Minute)
		defer cancel()
		if _, ok := ctx.Deadline(); !ok {
			t.Error("expected a deadline on the context")
		}
	})
}
