package rerun

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/caseforge/sdk/identity"
	"github.com/caseforge/sdk/testcase"
)

// Record is the persisted list of case IDs from one run, with enough
// metadata to tell runs apart.
type Record struct {
	// Suite is the name of the suite or generator the IDs belong to.
	Suite string

	// RunID identifies the run that produced the record.
	RunID string

	// RecordedAt is when the record was written.
	RecordedAt time.Time

	// IDs are the recorded case IDs.
	IDs []testcase.ID
}

// Selection builds a Selection over the record's IDs.
func (r *Record) Selection() *Selection {
	return NewSelection(r.IDs...)
}

// Validate checks the record for internal consistency. Duplicate case IDs
// indicate a corrupted or hand-edited record.
func (r *Record) Validate() error {
	seen := make(map[string]bool, len(r.IDs))
	for i, id := range r.IDs {
		key := id.Key()
		if seen[key] {
			return fmt.Errorf("duplicate case ID at index %d", i)
		}
		seen[key] = true
	}
	return nil
}

// wireArgumentID is the file form of one argument ID. Bytes are base64 so
// that the JSON and YAML forms stay byte-compatible.
type wireArgumentID struct {
	Bytes    string `json:"bytes" yaml:"bytes"`
	IsStable *bool  `json:"isStable,omitempty" yaml:"isStable,omitempty"`
}

type wireID struct {
	ArgumentIDs   []wireArgumentID `json:"argumentIDs" yaml:"argumentIDs"`
	Discriminator int              `json:"discriminator,omitempty" yaml:"discriminator,omitempty"`
}

type wireRecord struct {
	Suite      string    `json:"suite,omitempty" yaml:"suite,omitempty"`
	RunID      string    `json:"runId,omitempty" yaml:"runId,omitempty"`
	RecordedAt time.Time `json:"recordedAt,omitempty" yaml:"recordedAt,omitempty"`
	Cases      []wireID  `json:"cases" yaml:"cases"`
}

// Load reads a record from path. The format is detected by extension:
// .json, .yaml, or .yml. The record is validated before being returned.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	var w wireRecord
	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("failed to parse JSON record: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("failed to parse YAML record: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported record format: %s (supported: .json, .yaml, .yml)", ext)
	}

	rec, err := fromWire(&w)
	if err != nil {
		return nil, err
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("record validation failed: %w", err)
	}
	return rec, nil
}

// Save writes the record to path in the format implied by its extension.
func Save(path string, rec *Record) error {
	w := toWire(rec)

	var data []byte
	var err error
	switch ext := filepath.Ext(path); ext {
	case ".json":
		data, err = json.MarshalIndent(w, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(w)
	default:
		return fmt.Errorf("unsupported record format: %s (supported: .json, .yaml, .yml)", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write record file: %w", err)
	}
	return nil
}

func toWire(rec *Record) *wireRecord {
	w := &wireRecord{
		Suite:      rec.Suite,
		RunID:      rec.RunID,
		RecordedAt: rec.RecordedAt,
		Cases:      make([]wireID, len(rec.IDs)),
	}
	for i, id := range rec.IDs {
		args := make([]wireArgumentID, len(id.ArgumentIDs))
		for j, a := range id.ArgumentIDs {
			stable := a.Stable
			args[j] = wireArgumentID{
				Bytes:    base64.StdEncoding.EncodeToString(a.Bytes),
				IsStable: &stable,
			}
		}
		w.Cases[i] = wireID{ArgumentIDs: args, Discriminator: id.Discriminator}
	}
	return w
}

func fromWire(w *wireRecord) (*Record, error) {
	rec := &Record{
		Suite:      w.Suite,
		RunID:      w.RunID,
		RecordedAt: w.RecordedAt,
		IDs:        make([]testcase.ID, len(w.Cases)),
	}
	for i, c := range w.Cases {
		args := make([]identity.ID, len(c.ArgumentIDs))
		for j, a := range c.ArgumentIDs {
			b, err := base64.StdEncoding.DecodeString(a.Bytes)
			if err != nil {
				return nil, fmt.Errorf("invalid argument ID bytes in case %d: %w", i, err)
			}
			// Records written before the stability flag existed omit it;
			// those IDs were always treated as stable.
			stable := true
			if a.IsStable != nil {
				stable = *a.IsStable
			}
			args[j] = identity.ID{Bytes: b, Stable: stable}
		}
		rec.IDs[i] = testcase.ID{ArgumentIDs: args, Discriminator: c.Discriminator}
	}
	return rec, nil
}
