package engine

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-shellwords"
)

// ParseArgs applies engine argument overrides, given in shell-like syntax
// (e.g. `--temperature 0.5 --max-tokens 512`), on top of the provided base
// options.
func ParseArgs(args string, base Options) (Options, error) {
	fields, err := shellwords.Parse(args)
	if err != nil {
		return Options{}, fmt.Errorf("parsing engine arguments: %w", err)
	}
	options := base
	for i := 0; i < len(fields); i++ {
		flag := fields[i]
		if i+1 >= len(fields) {
			return Options{}, fmt.Errorf("missing value for engine argument %q", flag)
		}
		value := fields[i+1]
		i++
		switch flag {
		case "--temperature":
			parsed, err := strconv.ParseFloat(value, 32)
			if err != nil {
				return Options{}, fmt.Errorf("invalid temperature %q", value)
			}
			options.Temperature = float32(parsed)
		case "--max-tokens":
			parsed, err := strconv.Atoi(value)
			if err != nil || parsed <= 0 {
				return Options{}, fmt.Errorf("invalid max tokens %q", value)
			}
			options.MaxTokens = parsed
		case "--top-p":
			parsed, err := strconv.ParseFloat(value, 32)
			if err != nil {
				return Options{}, fmt.Errorf("invalid top-p %q", value)
			}
			options.TopP = float32(parsed)
		default:
			return Options{}, fmt.Errorf("unknown engine argument %q", flag)
		}
	}
	return options, nil
}
