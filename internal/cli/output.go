// Package cli provides the console front-end for the multiplier: it
// formats operands and results, drives one-shot and interactive
// calculations, and handles file export. It handles presentation only;
// all arithmetic lives in internal/bigmul.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const (
	// TruncationLimit is the digit threshold from which a result is
	// truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the
	// beginning and end of a truncated number.
	DisplayEdges = 25
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond,
// milliseconds for durations less than a second, and the default
// string representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatNumber renders a digit string for terminal display. Numbers
// longer than TruncationLimit digits are elided to their first and
// last DisplayEdges digits unless verbose is set.
func FormatNumber(s string, verbose bool) string {
	if verbose || len(s) <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...%s (%d digits)",
		s[:DisplayEdges], s[len(s)-DisplayEdges:], len(s))
}

// Result captures the outcome of a single multiplication for display
// and export purposes.
type Result struct {
	// A and B are the operands ("" for B when squaring).
	A, B string
	// Square indicates the squaring specialization was used.
	Square bool
	// Product is the computed decimal product.
	Product string
	// Duration is the time taken by the engine.
	Duration time.Duration
	// Verified is true when the result was cross-checked against math/big.
	Verified bool
}

// jsonResult is the wire shape used by -json output.
type jsonResult struct {
	A          string `json:"a"`
	B          string `json:"b,omitempty"`
	Square     bool   `json:"square,omitempty"`
	Product    string `json:"product"`
	Digits     int    `json:"digits"`
	DurationMS int64  `json:"duration_ms"`
	Verified   bool   `json:"verified,omitempty"`
}

// DisplayResult writes the result to out in the requested style:
// quiet (the bare product, for scripts), JSON, or the standard
// "x * y = p" console form with truncation of huge values.
func DisplayResult(out io.Writer, res Result, quiet, jsonOutput, verbose bool) error {
	switch {
	case jsonOutput:
		enc := json.NewEncoder(out)
		return enc.Encode(jsonResult{
			A:          res.A,
			B:          res.B,
			Square:     res.Square,
			Product:    res.Product,
			Digits:     len(res.Product),
			DurationMS: res.Duration.Milliseconds(),
			Verified:   res.Verified,
		})
	case quiet:
		_, err := fmt.Fprintln(out, res.Product)
		return err
	default:
		if res.Square {
			fmt.Fprintf(out, "%s^2 = %s%s%s\n",
				FormatNumber(res.A, verbose), ColorGreen(), FormatNumber(res.Product, verbose), ColorReset())
		} else {
			fmt.Fprintf(out, "%s * %s = %s%s%s\n",
				FormatNumber(res.A, verbose), FormatNumber(res.B, verbose),
				ColorGreen(), FormatNumber(res.Product, verbose), ColorReset())
		}
		fmt.Fprintf(out, "Completed in %s%s%s.", ColorYellow(), FormatExecutionDuration(res.Duration), ColorReset())
		if res.Verified {
			fmt.Fprintf(out, " %sVerified against math/big.%s", ColorCyan(), ColorReset())
		}
		fmt.Fprintln(out)
		return nil
	}
}

// WriteResultToFile writes a calculation result to a file, creating
// parent directories as needed. A small comment header records the
// provenance; the full product follows untruncated.
func WriteResultToFile(res Result, path string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# NTT Multiplication Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Duration: %s\n", res.Duration)
	fmt.Fprintf(file, "# Digits: %d\n", len(res.Product))
	fmt.Fprintf(file, "\n")
	if res.Square {
		fmt.Fprintf(file, "%s^2 =\n%s\n", res.A, res.Product)
	} else {
		fmt.Fprintf(file, "%s * %s =\n%s\n", res.A, res.B, res.Product)
	}
	return nil
}
