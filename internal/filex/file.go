// Package filex reads operator-supplied files.
package filex

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
)

// ReadLines returns the lines of the file at path in order, with trailing
// "\r" removed and blank lines dropped. Other whitespace is preserved since
// it may be part of a password.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	lines = lo.Map(lines, func(l string, _ int) string {
		return strings.TrimSuffix(l, "\r")
	})
	return lo.Filter(lines, func(l string, _ int) bool {
		return strings.TrimSpace(l) != ""
	}), nil
}
