// Package config provides the configuration management for the ntmul
// application. It defines the data structure for the configuration,
// handles the parsing of command-line arguments and environment
// overrides, and performs validation on the configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/agbru/ntmul/internal/bigmul"
	apperrors "github.com/agbru/ntmul/internal/errors"
	"github.com/agbru/ntmul/internal/ui"
)

const (
	// EnvPrefix is the prefix for all environment variables used by
	// ntmul. Environment variables provide an alternative to CLI flags,
	// following the 12-Factor App methodology.
	EnvPrefix = "NTMUL_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultTimeout is the default calculation timeout.
	DefaultTimeout = 5 * time.Minute
	// DefaultPort is the default server port.
	DefaultPort = "8080"
)

// AppConfig aggregates the application's configuration parameters,
// parsed from command-line flags. It encapsulates all settings that
// control the execution, from the operands to multiply to the
// performance-tuning parameters.
type AppConfig struct {
	// Operands holds the positional decimal operands: two for a
	// product, one for -square. Empty in interactive and server modes.
	Operands []string
	// Square, if true, squares a single operand instead of multiplying two.
	Square bool
	// NoValidate disables the digit-character check on operands; the
	// caller then asserts well-formedness. Validation is on by default.
	NoValidate bool
	// Verify cross-checks the result against math/big (slow for very
	// large operands, useful when auditing the engine).
	Verify bool
	// Verbose, if true, displays the full result regardless of length.
	Verbose bool
	// Timeout sets the maximum duration for the calculation.
	Timeout time.Duration
	// ParallelThreshold is the minimum transform segment length at which
	// the recursion runs its halves concurrently (0 = library default,
	// negative = sequential).
	ParallelThreshold int
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// Quiet mode - minimal output for scripting purposes. Suppresses
	// the spinner, banners, and informational messages.
	Quiet bool
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// Interactive, if true, reads operand pairs from standard input in
	// a prompt loop.
	Interactive bool
	// OutputFile, if specified, saves the result to this file path.
	OutputFile string
	// Completion, if non-empty, generates a completion script for the
	// named shell ("bash", "zsh", "fish", "powershell") and exits.
	Completion string
}

// ToOptions converts the application configuration into bigmul.Options
// for use by the multiplication engine.
func (c AppConfig) ToOptions() bigmul.Options {
	return bigmul.Options{
		Validate:          !c.NoValidate,
		ParallelThreshold: c.ParallelThreshold,
	}
}

// Validate checks the semantic consistency of the configuration
// parameters.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is
//     invalid, nil otherwise.
func (c AppConfig) Validate() error {
	if c.Completion != "" {
		// Completion generation ignores every other setting.
		return nil
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.ServerMode && c.Interactive {
		return apperrors.NewConfigError("server and interactive modes are mutually exclusive")
	}
	if c.ServerMode || c.Interactive {
		if len(c.Operands) > 0 {
			return apperrors.NewConfigError("positional operands are not accepted in server or interactive mode")
		}
	} else {
		want := 2
		if c.Square {
			want = 1
		}
		if len(c.Operands) != want {
			return apperrors.NewConfigError("expected %d operand(s), got %d", want, len(c.Operands))
		}
	}
	if c.ServerMode {
		if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
			return apperrors.NewConfigError("invalid port: %q", c.Port)
		}
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an
// AppConfig struct. It defines all the command-line flags, sets their
// default values, and handles the parsing process. After parsing, it
// applies environment overrides and validates the resulting
// configuration.
//
// The function is designed to be testable by allowing the input
// arguments and output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage
//     information will be printed.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.BoolVar(&config.Square, "square", false, "Square a single operand instead of multiplying two.")
	fs.BoolVar(&config.NoValidate, "no-validate", false, "Skip operand validation (caller asserts digit strings are well-formed).")
	fs.BoolVar(&config.Verify, "verify", false, "Cross-check the result against math/big.")
	fs.BoolVar(&config.Verbose, "v", false, "Display the full value of the result (can be very long).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the calculation.")
	fs.IntVar(&config.ParallelThreshold, "parallel-threshold", 0, "Minimum transform segment length for parallel recursion (0 = default, negative = sequential).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Interactive, "interactive", false, "Read operand pairs from standard input in a prompt loop.")
	fs.StringVar(&config.Completion, "completion", "", "Generate a completion script for the given shell (bash, zsh, fish, powershell).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	config.Operands = fs.Args()

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}

// setCustomUsage configures the flag set with a colored usage function.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		// Respect NO_COLOR even before app initialization
		t := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t = ui.NoColorTheme
		}

		out := fs.Output()

		fmt.Fprintf(out, "\n%sNTT Decimal Multiplier%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Multiplies arbitrary-precision decimal integers in O(n log n) time.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n  %s [flags] <a> <b>\n  %s [flags] -square <x>\n\n%sFlags:%s\n",
			t.Warning, t.Reset, fs.Name(), fs.Name(), t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			flagSig := fmt.Sprintf("-%s", f.Name)
			if len(name) > 0 {
				flagSig += " " + name
			}

			fmt.Fprintf(out, "  %s%-25s%s %s", t.Primary, flagSig, t.Reset, usage)

			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintln(out)
	}
}
