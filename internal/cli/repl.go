// Interactive prompt for the multiplier: read two lines, multiply,
// print, repeat.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/ntmul/internal/bigmul"
	"github.com/agbru/ntmul/internal/config"
	apperrors "github.com/agbru/ntmul/internal/errors"
)

// REPL represents an interactive multiplication session. Each round
// reads two operand lines from the input, invokes the engine with
// validation enabled, and prints either "x * y = <result>" or the
// error message. The session ends on EOF or an exit command.
type REPL struct {
	cfg config.AppConfig
	in  io.Reader
	out io.Writer
}

// NewREPL creates a new REPL instance reading from in and writing to out.
func NewREPL(cfg config.AppConfig, in io.Reader, out io.Writer) *REPL {
	return &REPL{cfg: cfg, in: in, out: out}
}

// Run starts the interactive session. It returns when the input is
// exhausted, an exit command is entered, or ctx is canceled between
// rounds.
//
// Returns:
//   - int: The process exit code (always success unless the terminal
//     input fails).
func (r *REPL) Run(ctx context.Context) int {
	scanner := bufio.NewScanner(r.in)
	// Operands can be millions of digits; grow the line buffer well
	// beyond the bufio default.
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	if !r.cfg.Quiet {
		fmt.Fprintf(r.out, "%sInteractive multiplier%s - enter two decimal integers, 'exit' to quit.\n",
			ColorBold(), ColorReset())
	}

	for {
		if ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}

		x, ok := r.readOperand(scanner, "x")
		if !ok {
			return apperrors.ExitSuccess
		}
		y, ok := r.readOperand(scanner, "y")
		if !ok {
			return apperrors.ExitSuccess
		}

		r.evaluate(x, y)
	}
}

// readOperand prompts for and reads one operand line. The second
// return value is false when the session should end.
func (r *REPL) readOperand(scanner *bufio.Scanner, name string) (string, bool) {
	fmt.Fprintf(r.out, "%s%s:%s ", ColorBlue(), name, ColorReset())
	if !scanner.Scan() {
		fmt.Fprintln(r.out)
		return "", false
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "exit" || line == "quit" {
		return "", false
	}
	return line, true
}

// evaluate multiplies one operand pair and prints the outcome.
// Validation is always enabled here: interactive input is the
// untrusted boundary the validation contract exists for.
func (r *REPL) evaluate(x, y string) {
	opts := bigmul.Options{Validate: true, ParallelThreshold: r.cfg.ParallelThreshold}

	start := time.Now()
	product, err := bigmul.MultiplyWithOptions(x, y, opts)
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(r.out, "%sError:%s %v\n", ColorRed(), ColorReset(), err)
		return
	}
	fmt.Fprintf(r.out, "%s * %s = %s%s%s\n",
		FormatNumber(x, r.cfg.Verbose), FormatNumber(y, r.cfg.Verbose),
		ColorGreen(), FormatNumber(product, r.cfg.Verbose), ColorReset())
	if !r.cfg.Quiet {
		fmt.Fprintf(r.out, "(%s)\n", FormatExecutionDuration(duration))
	}
}
