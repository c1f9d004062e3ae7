// Command generate-golden regenerates the multiplication golden file used by
// the bigmul tests. Products are computed with math/big, which serves as the
// oracle for the transform-based engine.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
)

// GoldenCase represents a single test case in the golden file.
type GoldenCase struct {
	A       string `json:"a"`
	B       string `json:"b"`
	Product string `json:"product"`
}

func main() {
	outputDir := flag.String("out", "internal/bigmul/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "multiply_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// Operand pairs cover the interesting shapes:
	// - small numbers and the zero/one identities
	// - carry cascades (all-nines operands)
	// - powers of ten (sparse coefficients)
	// - mismatched operand lengths
	// - repeated-block operands of growing size
	pairs := [][2]string{
		{"0", "0"},
		{"0", "12345"},
		{"1", "1"},
		{"9", "9"},
		{"123", "456"},
		{"999999999999", "999999999999"},
		{"123456789", "987654321"},
		{"1" + strings.Repeat("0", 50), "1" + strings.Repeat("0", 50)},
		{strings.Repeat("9", 100), strings.Repeat("9", 100)},
		{"7", strings.Repeat("9", 300)},
	}

	for _, blocks := range []int{2, 8, 32, 128} {
		a := strings.Repeat("123456789", blocks)
		b := strings.Repeat("987654321", blocks/2+1)
		pairs = append(pairs, [2]string{a, b})
	}

	var data []GoldenCase
	fmt.Println("Generating golden data...")

	for _, p := range pairs {
		data = append(data, GoldenCase{
			A:       p[0],
			B:       p[1],
			Product: mulBig(p[0], p[1]),
		})
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

// mulBig computes the product of two decimal strings using math/big.
func mulBig(a, b string) string {
	x, ok := new(big.Int).SetString(a, 10)
	if !ok {
		fmt.Fprintf(os.Stderr, "invalid operand: %q\n", a)
		os.Exit(1)
	}
	y, ok := new(big.Int).SetString(b, 10)
	if !ok {
		fmt.Fprintf(os.Stderr, "invalid operand: %q\n", b)
		os.Exit(1)
	}
	return new(big.Int).Mul(x, y).String()
}
