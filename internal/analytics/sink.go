package analytics

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// ReadSink reads a JSONL sink file back into events, oldest first. Lines
// that fail to decode are skipped; external tools may truncate mid-write.
func ReadSink(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open analytics sink: %w", err)
	}
	defer f.Close()

	var events []Event
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var ev Event
		if err := json.Unmarshal(sc.Bytes(), &ev); err != nil {
			continue
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return events, fmt.Errorf("scan analytics sink: %w", err)
	}
	return events, nil
}

// SinkTail returns the newest n events from a sink file, newest first.
func SinkTail(path string, n int) ([]Event, error) {
	events, err := ReadSink(path)
	if err != nil {
		return nil, err
	}
	if n > len(events) {
		n = len(events)
	}
	out := make([]Event, 0, n)
	for i := len(events) - 1; i >= len(events)-n; i-- {
		out = append(out, events[i])
	}
	return out, nil
}
