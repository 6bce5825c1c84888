package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlenaMolokova/cardauth/internal/card"
	"github.com/AlenaMolokova/cardauth/internal/validation"
	"gopkg.in/yaml.v3"
)

type entry struct {
	Number string       `json:"number" yaml:"number"`
	Result *card.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string       `json:"error,omitempty" yaml:"error,omitempty"`
}

func (e entry) ok() bool {
	return e.Error == "" && e.Result != nil && e.Result.Valid
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns 0 when every number is valid, 1 when any is not and 2 on
// usage or input errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cardcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		inputFile    string
		outputFormat string
	)
	fs.StringVar(&inputFile, "f", "", "File with one card number per line")
	fs.StringVar(&outputFormat, "o", "text", "Output format: text, json, yaml")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: cardcheck [-f file] [-o text|json|yaml] [number ...]")
		fmt.Fprintln(stderr, "Reads numbers from stdin when none are given.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	numbers := fs.Args()
	if len(numbers) == 0 {
		input := stdin
		if inputFile != "" {
			f, err := os.Open(inputFile)
			if err != nil {
				fmt.Fprintf(stderr, "Error reading file: %v\n", err)
				return 2
			}
			defer f.Close()
			input = f
		}

		var err error
		numbers, err = readNumbers(input)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading input: %v\n", err)
			return 2
		}
	}

	entries := check(numbers, validation.NewDigitsValidator())

	if err := write(stdout, outputFormat, entries); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 2
	}

	for _, e := range entries {
		if !e.ok() {
			return 1
		}
	}
	return 0
}

func readNumbers(r io.Reader) ([]string, error) {
	var numbers []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		numbers = append(numbers, line)
	}
	return numbers, scanner.Err()
}

func check(numbers []string, v validation.NumberValidator) []entry {
	entries := make([]entry, 0, len(numbers))
	for _, raw := range numbers {
		number, err := v.ValidateNumber(raw)
		if err != nil {
			entries = append(entries, entry{Number: raw, Error: err.Error()})
			continue
		}
		result := card.Authenticate(number)
		entries = append(entries, entry{Number: number, Result: &result})
	}
	return entries
}

func write(w io.Writer, format string, entries []entry) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(entries)
	case "text":
		for _, e := range entries {
			if e.Error != "" {
				fmt.Fprintf(w, "%s\tmalformed\t%s\n", e.Number, e.Error)
				continue
			}
			status := "invalid"
			if e.Result.Valid {
				status = "valid"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\tlength=%t luhn=%t\n",
				e.Number, e.Result.IssuerName(), status, e.Result.LengthValid, e.Result.LuhnValid)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
