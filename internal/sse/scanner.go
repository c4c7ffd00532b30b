// Package sse implements a minimal server-sent events reader used by the
// provider clients.
package sse

import (
	"bufio"
	"io"
	"strings"
)

const maxScanTokenSize = 5 * 1024 * 1024 // 5MB; audio chunks are large

// Event represents a server-sent event.
type Event struct {
	Type string
	Data string
	ID   string
}

// Scanner reads SSE events from a stream. Events are separated by blank
// lines; multiple data lines within one event are joined with newlines.
type Scanner struct {
	scanner *bufio.Scanner

	curr Event
}

// NewScanner creates a new SSE scanner from an io.Reader.
func NewScanner(reader io.Reader) *Scanner {
	scanner := bufio.NewScanner(reader)
	buf := make([]byte, maxScanTokenSize)
	scanner.Buffer(buf, maxScanTokenSize)
	return &Scanner{
		scanner: scanner,
	}
}

// Next advances to the next event with a non-empty data payload. It returns
// false at end of stream or on read error.
func (s *Scanner) Next() bool {
	event := Event{}
	for s.scanner.Scan() {
		line := strings.TrimRight(s.scanner.Text(), "\r")

		if line == "" {
			if event.Data != "" {
				s.curr = event
				return true
			}
			event = Event{}
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")

		switch field {
		case "event":
			event.Type = value
		case "data":
			if event.Data != "" {
				event.Data += "\n"
			}
			event.Data += value
		case "id":
			event.ID = value
		}
	}

	// Stream ended without a trailing blank line.
	if event.Data != "" {
		s.curr = event
		return true
	}
	return false
}

// Current returns the event read by the last successful Next call.
func (s *Scanner) Current() Event {
	return s.curr
}

// Err returns any error encountered during scanning.
func (s *Scanner) Err() error {
	return s.scanner.Err()
}
