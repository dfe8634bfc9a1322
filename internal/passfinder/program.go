package passfinder

import (
	"strings"

	"golang.org/x/text/cases"

	"cdvrpass/internal/channelsdvr"
)

const (
	defaultCategory = "Program"
	manualMarker    = "-ch"
)

var seriesCategories = map[string]struct{}{
	"episode": {},
	"show":    {},
	"series":  {},
}

// Program is one airing from the jobs or files collection, reduced to the
// fields the lookup needs.
type Program struct {
	ID     string
	JobID  string
	FileID string
	RuleID string

	Title         string
	Category      string
	SeasonNumber  int
	EpisodeNumber int
	StartTime     string

	Imported   bool
	ImportPath string
	// FileName is filled in by Finder for recorded programs.
	FileName string
}

// NewProgram converts a DVR record into a Program.
func NewProgram(rec channelsdvr.Record) Program {
	category := defaultCategory
	if len(rec.Airing.Categories) > 0 {
		category = rec.Airing.Categories[0]
	}
	p := Program{
		ID:            rec.ID,
		JobID:         rec.JobID,
		FileID:        rec.FileID,
		RuleID:        rec.RuleID,
		Title:         rec.Airing.Title,
		Category:      category,
		SeasonNumber:  rec.Airing.SeasonNumber,
		EpisodeNumber: rec.Airing.EpisodeNumber,
		StartTime:     rec.Airing.StartTime(),
	}
	if rec.ImportPath.Present {
		p.Imported = true
		p.ImportPath = rec.ImportPath.Path
	}
	return p
}

// IsImported reports whether the program entered the library outside the
// DVR's recording pipeline.
func (p Program) IsImported() bool {
	return p.Imported
}

// IsManualRecording reports whether the program was scheduled by hand. Manual
// jobs carry the channel marker in their own ID or, once recorded, in the
// job ID of the file.
func (p Program) IsManualRecording() bool {
	if strings.Contains(p.ID, manualMarker) {
		return true
	}
	return p.JobID != "" && strings.Contains(p.JobID, manualMarker)
}

// IsSeriesLike reports whether season and episode numbers are meaningful for
// the program's category.
func (p Program) IsSeriesLike() bool {
	_, ok := seriesCategories[cases.Fold().String(strings.TrimSpace(p.Category))]
	return ok
}

// needsFileName reports whether the program's file name comes from the media
// info endpoint. Library files have plain numeric IDs; jobs use
// "<time>-<channel>" IDs and are skipped.
func (p Program) needsFileName() bool {
	return p.FileID == "" && p.ID != "" && !strings.Contains(p.ID, "-")
}
