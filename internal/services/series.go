package services

import "strings"

// SplitSeriesLines breaks a series string into its per-set lines.
func SplitSeriesLines(series string) []string {
	rawLines := strings.Split(strings.ReplaceAll(series, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
