package cli

import (
	"errors"
	"io"
	"strings"
)

// readLine reads up to the next newline one byte at a time so nothing past
// the line is consumed from a shared stdin.
func readLine(stdin io.Reader) ([]byte, error) {
	var line []byte
	buffer := make([]byte, 1)
	for {
		n, err := stdin.Read(buffer)
		if n == 1 {
			if buffer[0] == '\n' {
				break
			}
			line = append(line, buffer[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return []byte(strings.TrimRight(string(line), "\r")), nil
}
