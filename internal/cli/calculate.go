package cli

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/agbru/ntmul/internal/bigmul"
	"github.com/agbru/ntmul/internal/config"
	apperrors "github.com/agbru/ntmul/internal/errors"
)

// RunCalculation executes a single one-shot multiplication or squaring
// according to the configuration and prints the outcome. It drives the
// whole console pipeline: spinner, engine call with timeout, optional
// math/big verification, display, and file export.
//
// Parameters:
//   - ctx: The context carrying the timeout and signal cancellation.
//   - cfg: The application configuration (operands, modes, output).
//   - out: The writer for standard output.
//   - errOut: The writer for error output.
//
// Returns:
//   - int: The process exit code.
func RunCalculation(ctx context.Context, cfg config.AppConfig, out, errOut io.Writer) int {
	res, duration, err := Compute(ctx, cfg, out)
	if err != nil {
		return apperrors.HandleCalculationError(err, duration, errOut, ThemeColors{})
	}

	if err := DisplayResult(out, res, cfg.Quiet, cfg.JSONOutput, cfg.Verbose); err != nil {
		fmt.Fprintf(errOut, "Failed to write result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if err := WriteResultToFile(res, cfg.OutputFile); err != nil {
		fmt.Fprintf(errOut, "Failed to export result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// Compute runs the configured engine operation under ctx, showing a
// spinner unless quiet or JSON output is requested. The engine itself
// has no suspension points, so cancellation is observed by abandoning
// the running goroutine and returning the context error; the goroutine
// finishes in the background and its buffers are reclaimed afterwards.
func Compute(ctx context.Context, cfg config.AppConfig, out io.Writer) (Result, time.Duration, error) {
	var sp Spinner = noopSpinner{}
	if !cfg.Quiet && !cfg.JSONOutput {
		sp = newSpinner(out)
		sp.UpdateSuffix(" multiplying...")
	}

	type outcome struct {
		product string
		err     error
	}
	ch := make(chan outcome, 1)

	start := time.Now()
	sp.Start()
	defer sp.Stop()

	go func() {
		var product string
		var err error
		if cfg.Square {
			product, err = bigmul.SquareWithOptions(cfg.Operands[0], cfg.ToOptions())
		} else {
			product, err = bigmul.MultiplyWithOptions(cfg.Operands[0], cfg.Operands[1], cfg.ToOptions())
		}
		ch <- outcome{product, err}
	}()

	select {
	case <-ctx.Done():
		return Result{}, time.Since(start), ctx.Err()
	case oc := <-ch:
		duration := time.Since(start)
		if oc.err != nil {
			return Result{}, duration, oc.err
		}
		res := Result{
			A:        cfg.Operands[0],
			Square:   cfg.Square,
			Product:  oc.product,
			Duration: duration,
		}
		if !cfg.Square {
			res.B = cfg.Operands[1]
		}
		if cfg.Verify {
			if err := VerifyResult(res); err != nil {
				return Result{}, duration, err
			}
			res.Verified = true
		}
		return res, duration, nil
	}
}

// VerifyResult cross-checks a result against math/big, the independent
// arbitrary-precision implementation shipped with the standard library.
func VerifyResult(res Result) error {
	x, ok := new(big.Int).SetString(res.A, 10)
	if !ok {
		return fmt.Errorf("verification failed: operand %q is not parseable", res.A)
	}
	expected := new(big.Int)
	if res.Square {
		expected.Mul(x, x)
	} else {
		y, ok := new(big.Int).SetString(res.B, 10)
		if !ok {
			return fmt.Errorf("verification failed: operand %q is not parseable", res.B)
		}
		expected.Mul(x, y)
	}
	if got := expected.String(); got != res.Product {
		return fmt.Errorf("verification failed: engine produced %d digits, math/big %d digits",
			len(res.Product), len(got))
	}
	return nil
}
