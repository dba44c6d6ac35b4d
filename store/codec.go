package store

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrVersionMismatch is returned by DecodeRun for payloads written under
// another schema version.
var ErrVersionMismatch = errors.New("store: record version mismatch")

// EncodeRun serializes r as JSON.
func EncodeRun(r Run) ([]byte, error) {
	return json.Marshal(r)
}

// DecodeRun parses a payload written by EncodeRun and checks its schema version.
func DecodeRun(data []byte) (Run, error) {
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return Run{}, err
	}
	if run.SchemaVersion != CurrentSchemaVersion {
		return Run{}, fmt.Errorf("%w: schema=%d want=%d", ErrVersionMismatch, run.SchemaVersion, CurrentSchemaVersion)
	}
	return run, nil
}
