package internal

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ReadLines buffers every non-blank line of r with surrounding whitespace
// removed. Lines have no length limit.
func ReadLines(r io.Reader) ([]string, error) {
	lines := []string{}

	reader := bufio.NewReader(r)
	for {
		raw, err := reader.ReadString('\n')
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read_lines")
		}
	}

	return lines, nil
}
