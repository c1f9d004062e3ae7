package config

import (
	"io"
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig("ntmul", []string{"123", "456"}, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if cfg.Timeout != 5*time.Minute {
			t.Errorf("Expected default Timeout 5m, got %v", cfg.Timeout)
		}
		if cfg.Port != "8080" {
			t.Errorf("Expected default Port 8080, got %s", cfg.Port)
		}
		if cfg.ParallelThreshold != 0 {
			t.Errorf("Expected default ParallelThreshold 0, got %d", cfg.ParallelThreshold)
		}
		if cfg.NoValidate {
			t.Error("Expected validation enabled by default")
		}
		if len(cfg.Operands) != 2 || cfg.Operands[0] != "123" || cfg.Operands[1] != "456" {
			t.Errorf("Expected operands [123 456], got %v", cfg.Operands)
		}
	})

	t.Run("ValidFlags", func(t *testing.T) {
		t.Parallel()
		args := []string{
			"-v",
			"-timeout", "10s",
			"-parallel-threshold", "5000",
			"-verify",
			"-json",
			"-quiet",
			"7", "8",
		}
		cfg, err := ParseConfig("ntmul", args, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !cfg.Verbose {
			t.Error("Expected Verbose true")
		}
		if cfg.Timeout != 10*time.Second {
			t.Errorf("Expected Timeout 10s, got %v", cfg.Timeout)
		}
		if cfg.ParallelThreshold != 5000 {
			t.Errorf("Expected ParallelThreshold 5000, got %d", cfg.ParallelThreshold)
		}
		if !cfg.Verify {
			t.Error("Expected Verify true")
		}
		if !cfg.JSONOutput {
			t.Error("Expected JSONOutput true")
		}
		if !cfg.Quiet {
			t.Error("Expected Quiet true")
		}
	})

	t.Run("SquareMode", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig("ntmul", []string{"-square", "999"}, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !cfg.Square {
			t.Error("Expected Square true")
		}
		if len(cfg.Operands) != 1 || cfg.Operands[0] != "999" {
			t.Errorf("Expected operands [999], got %v", cfg.Operands)
		}
	})

	t.Run("ServerMode", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig("ntmul", []string{"-server", "-port", "9090"}, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !cfg.ServerMode {
			t.Error("Expected ServerMode true")
		}
		if cfg.Port != "9090" {
			t.Errorf("Expected Port 9090, got %s", cfg.Port)
		}
	})

	t.Run("EnvOverrides", func(t *testing.T) {
		env := map[string]string{
			"NTMUL_TIMEOUT":            "2m",
			"NTMUL_PARALLEL_THRESHOLD": "1024",
			"NTMUL_QUIET":              "true",
			"NTMUL_NO_COLOR":           "yes",
			"NTMUL_OUTPUT":             "out.txt",
		}
		for k, v := range env {
			t.Setenv(k, v)
		}

		cfg, err := ParseConfig("ntmul", []string{"123", "456"}, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if cfg.Timeout != 2*time.Minute {
			t.Errorf("Expected Timeout 2m from env, got %v", cfg.Timeout)
		}
		if cfg.ParallelThreshold != 1024 {
			t.Errorf("Expected ParallelThreshold 1024 from env, got %d", cfg.ParallelThreshold)
		}
		if !cfg.Quiet {
			t.Error("Expected Quiet true from env")
		}
		if !cfg.NoColor {
			t.Error("Expected NoColor true from env")
		}
		if cfg.OutputFile != "out.txt" {
			t.Errorf("Expected OutputFile out.txt from env, got %s", cfg.OutputFile)
		}
	})

	t.Run("FlagsWinOverEnv", func(t *testing.T) {
		t.Setenv("NTMUL_TIMEOUT", "2m")

		cfg, err := ParseConfig("ntmul", []string{"-timeout", "30s", "123", "456"}, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Timeout != 30*time.Second {
			t.Errorf("Expected CLI flag to win over env: got %v", cfg.Timeout)
		}
	})

	t.Run("CompletionSkipsOperandChecks", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig("ntmul", []string{"-completion", "bash"}, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Completion != "bash" {
			t.Errorf("Expected Completion bash, got %s", cfg.Completion)
		}
	})

	t.Run("InvalidFlag", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseConfig("ntmul", []string{"-does-not-exist"}, io.Discard); err == nil {
			t.Error("Expected error for unknown flag")
		}
	})
}

func TestAppConfigValidate(t *testing.T) {
	t.Parallel()

	valid := AppConfig{
		Operands: []string{"1", "2"},
		Timeout:  time.Minute,
		Port:     DefaultPort,
	}

	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"valid two operands", func(c *AppConfig) {}, false},
		{"valid square", func(c *AppConfig) { c.Square = true; c.Operands = []string{"9"} }, false},
		{"zero timeout", func(c *AppConfig) { c.Timeout = 0 }, true},
		{"negative timeout", func(c *AppConfig) { c.Timeout = -time.Second }, true},
		{"server and interactive", func(c *AppConfig) {
			c.ServerMode = true
			c.Interactive = true
			c.Operands = nil
		}, true},
		{"operands in server mode", func(c *AppConfig) { c.ServerMode = true }, true},
		{"server mode without operands", func(c *AppConfig) { c.ServerMode = true; c.Operands = nil }, false},
		{"interactive without operands", func(c *AppConfig) { c.Interactive = true; c.Operands = nil }, false},
		{"one operand without square", func(c *AppConfig) { c.Operands = []string{"9"} }, true},
		{"three operands", func(c *AppConfig) { c.Operands = []string{"1", "2", "3"} }, true},
		{"two operands with square", func(c *AppConfig) { c.Square = true }, true},
		{"invalid port", func(c *AppConfig) {
			c.ServerMode = true
			c.Operands = nil
			c.Port = "notaport"
		}, true},
		{"port out of range", func(c *AppConfig) {
			c.ServerMode = true
			c.Operands = nil
			c.Port = "70000"
		}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			cfg.Operands = append([]string(nil), valid.Operands...)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestToOptions(t *testing.T) {
	t.Parallel()

	cfg := AppConfig{NoValidate: false, ParallelThreshold: 4096}
	opts := cfg.ToOptions()
	if !opts.Validate {
		t.Error("Expected Validate true when NoValidate is false")
	}
	if opts.ParallelThreshold != 4096 {
		t.Errorf("Expected ParallelThreshold 4096, got %d", opts.ParallelThreshold)
	}

	cfg.NoValidate = true
	if cfg.ToOptions().Validate {
		t.Error("Expected Validate false when NoValidate is true")
	}
}
