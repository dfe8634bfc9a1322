package channelsdvr

import (
	"encoding/json"
	"fmt"
)

// Rule is a recording rule, called a "pass" in the Channels DVR UI.
type Rule struct {
	ID     string `json:"ID"`
	Name   string `json:"Name"`
	Query  string `json:"Query,omitempty"`
	Paused bool   `json:"Paused,omitempty"`
}

// Record is one entry of the jobs or files collections. Jobs and files share
// the fields the pass lookup reads.
type Record struct {
	ID         string     `json:"ID"`
	RuleID     string     `json:"RuleID,omitempty"`
	JobID      string     `json:"JobID,omitempty"`
	FileID     string     `json:"FileID,omitempty"`
	ImportPath ImportPath `json:"ImportPath,omitzero"`
	Skipped    bool       `json:"Skipped,omitempty"`
	Airing     Airing     `json:"Airing"`
}

// ImportPath records whether a record carried the ImportPath key. Any value
// marks the record as imported, including an empty string or null.
type ImportPath struct {
	Present bool
	Path    string
}

// UnmarshalJSON implements json.Unmarshaler. The decoder calls it for null
// too, so a null value still counts as present.
func (p *ImportPath) UnmarshalJSON(data []byte) error {
	p.Present = true
	p.Path = ""
	if string(data) == "null" {
		return nil
	}
	var path string
	if err := json.Unmarshal(data, &path); err != nil {
		return fmt.Errorf("decode ImportPath: %w", err)
	}
	p.Path = path
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p ImportPath) MarshalJSON() ([]byte, error) {
	if !p.Present {
		return []byte("null"), nil
	}
	return json.Marshal(p.Path)
}

// IsZero lets omitzero drop the key when it was never present.
func (p ImportPath) IsZero() bool {
	return !p.Present
}

// Airing describes a single broadcast of a program.
type Airing struct {
	Title         string          `json:"Title"`
	Categories    []string        `json:"Categories,omitempty"`
	SeasonNumber  int             `json:"SeasonNumber,omitempty"`
	EpisodeNumber int             `json:"EpisodeNumber,omitempty"`
	Raw           json.RawMessage `json:"Raw,omitempty"`
}

// StartTime returns Raw.startTime when the guide source provided one.
func (a Airing) StartTime() string {
	if len(a.Raw) == 0 {
		return ""
	}
	var raw struct {
		StartTime any `json:"startTime"`
	}
	if err := json.Unmarshal(a.Raw, &raw); err != nil {
		return ""
	}
	value, _ := raw.StartTime.(string)
	return value
}

// MediaInfo is the subset of /dvr/files/{id}/mediainfo.json used to name a
// recorded file.
type MediaInfo struct {
	Format struct {
		Filename string `json:"filename"`
	} `json:"format"`
}
