package passfinder

import (
	"context"
	"log/slog"

	"cdvrpass/internal/channelsdvr"
	"cdvrpass/internal/logging"
	"cdvrpass/internal/services"
)

const (
	SectionScheduled = "scheduled"
	SectionLibrary   = "library"
)

// Source is the subset of the DVR client used by Finder.
type Source interface {
	Rules(ctx context.Context) ([]channelsdvr.Rule, error)
	Jobs(ctx context.Context) ([]channelsdvr.Record, error)
	Files(ctx context.Context) ([]channelsdvr.Record, error)
	MediaInfo(ctx context.Context, fileID string) (channelsdvr.MediaInfo, error)
}

// Result groups classified matches by where they were found.
type Result struct {
	Passes    Passes
	Scheduled []Match
	Library   []Match
}

// Empty reports whether nothing matched in either section.
func (r Result) Empty() bool {
	return len(r.Scheduled) == 0 && len(r.Library) == 0
}

// Finder runs pass lookups against a DVR server.
type Finder struct {
	source Source
	logger *slog.Logger
}

// NewFinder returns a Finder reading from source.
func NewFinder(source Source, logger *slog.Logger) *Finder {
	return &Finder{
		source: source,
		logger: logging.NewComponentLogger(logger, "passfinder"),
	}
}

// Find fetches rules, scheduled jobs, and library files, and returns the
// classified programs matching c. Skipped jobs are ignored. Fetch failures
// abort the lookup; a failed media info lookup only leaves that program's
// file name empty.
func (f *Finder) Find(ctx context.Context, c Criteria) (Result, error) {
	rules, err := f.source.Rules(ctx)
	if err != nil {
		return Result{}, err
	}
	passes := PassesFromRules(rules)
	f.logger.InfoContext(ctx, "loaded passes", slog.Int("count", len(passes)))

	jobs, err := f.source.Jobs(ctx)
	if err != nil {
		return Result{}, err
	}
	active := jobs[:0:0]
	for _, job := range jobs {
		if !job.Skipped {
			active = append(active, job)
		}
	}

	files, err := f.source.Files(ctx)
	if err != nil {
		return Result{}, err
	}

	result := Result{Passes: passes}
	result.Scheduled = f.collect(services.WithSection(ctx, SectionScheduled), active, c, passes)
	result.Library = f.collect(services.WithSection(ctx, SectionLibrary), files, c, passes)

	f.logger.InfoContext(ctx, "lookup complete",
		slog.String("title", c.Title),
		slog.Int("scheduled", len(result.Scheduled)),
		slog.Int("library", len(result.Library)),
	)
	return result, nil
}

func (f *Finder) collect(ctx context.Context, records []channelsdvr.Record, c Criteria, passes Passes) []Match {
	programs := Filter(records, c)
	if len(programs) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(programs))
	for _, p := range programs {
		if p.needsFileName() {
			p.FileName = f.fileName(ctx, p.ID)
		}
		matches = append(matches, Match{Program: p, Classification: Classify(p, passes)})
	}
	f.logger.DebugContext(ctx, "matched programs", slog.Int("count", len(matches)), slog.Int("scanned", len(records)))
	return matches
}

func (f *Finder) fileName(ctx context.Context, id string) string {
	info, err := f.source.MediaInfo(ctx, id)
	if err != nil {
		f.logger.WarnContext(ctx, "media info lookup failed; file name omitted",
			slog.String("file_id", id),
			slog.Any("error", err),
			slog.String("error_hint", services.Hint(err)),
		)
		return ""
	}
	return info.Format.Filename
}
