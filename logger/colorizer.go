package logger

import (
	"io"
	"strings"
)

const (
	penTag    = "\033[1m"
	penNormal = "\033[0m"
)

// Colorizer is an io.Writer that highlights the tag of each log line with
// ANSI sequences. Only use it when the destination is a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer wraps out.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	var sb strings.Builder
	for _, line := range strings.SplitAfter(string(p), "\n") {
		if line == "" {
			continue
		}
		tag, rest, ok := strings.Cut(line, ": ")
		if !ok {
			sb.WriteString(line)
			continue
		}
		sb.WriteString(penTag)
		sb.WriteString(tag)
		sb.WriteString(penNormal)
		sb.WriteString(": ")
		sb.WriteString(rest)
	}
	if _, err := io.WriteString(c.out, sb.String()); err != nil {
		return 0, err
	}
	return len(p), nil
}
