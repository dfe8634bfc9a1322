package passfinder_test

import (
	"context"
	"errors"
	"testing"

	"cdvrpass/internal/channelsdvr"
	"cdvrpass/internal/passfinder"
	"cdvrpass/internal/services"
)

type fakeSource struct {
	rules     []channelsdvr.Rule
	jobs      []channelsdvr.Record
	files     []channelsdvr.Record
	mediaInfo map[string]string
	err       map[string]error
	calls     []string
}

func (f *fakeSource) Rules(context.Context) ([]channelsdvr.Rule, error) {
	f.calls = append(f.calls, "rules")
	return f.rules, f.err["rules"]
}

func (f *fakeSource) Jobs(context.Context) ([]channelsdvr.Record, error) {
	f.calls = append(f.calls, "jobs")
	return f.jobs, f.err["jobs"]
}

func (f *fakeSource) Files(context.Context) ([]channelsdvr.Record, error) {
	f.calls = append(f.calls, "files")
	return f.files, f.err["files"]
}

func (f *fakeSource) MediaInfo(_ context.Context, id string) (channelsdvr.MediaInfo, error) {
	f.calls = append(f.calls, "mediainfo:"+id)
	var info channelsdvr.MediaInfo
	name, ok := f.mediaInfo[id]
	if !ok {
		return info, services.Wrap(services.ErrNotFound, "fake", "mediainfo", id, nil)
	}
	info.Format.Filename = name
	return info, nil
}

func friendsAiring(season, episode int) channelsdvr.Airing {
	return channelsdvr.Airing{
		Title:         "Friends",
		Categories:    []string{"Episode"},
		SeasonNumber:  season,
		EpisodeNumber: episode,
	}
}

func TestFindClassifiesBothSections(t *testing.T) {
	src := &fakeSource{
		rules: []channelsdvr.Rule{{ID: "r1", Name: "Friends"}},
		jobs: []channelsdvr.Record{
			{ID: "1687618800-r1", RuleID: "r1", Airing: friendsAiring(1, 2)},
			{ID: "1687622400-r1", RuleID: "r1", Skipped: true, Airing: friendsAiring(1, 3)},
			{ID: "1687626000-ch7", Airing: friendsAiring(1, 4)},
			{ID: "1687629600-r9", RuleID: "r9", Airing: channelsdvr.Airing{Title: "Seinfeld"}},
		},
		files: []channelsdvr.Record{
			{ID: "100", RuleID: "r1", JobID: "1687000000-r1", Airing: friendsAiring(1, 1)},
			{ID: "101", RuleID: "gone", Airing: friendsAiring(2, 1)},
		},
		mediaInfo: map[string]string{"100": "Friends S01E01.mpg", "101": "Friends S02E01.mpg"},
	}

	result, err := passfinder.NewFinder(src, nil).Find(context.Background(), passfinder.Criteria{Title: "Friends"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if result.Empty() {
		t.Fatal("expected matches")
	}
	if len(result.Scheduled) != 2 {
		t.Fatalf("expected skipped job and other titles to be dropped, got %+v", result.Scheduled)
	}
	if got := result.Scheduled[0]; got.Kind != passfinder.KindPass || got.PassName != "Friends" || got.FileName != "" {
		t.Fatalf("unexpected first scheduled match: %+v", got)
	}
	if got := result.Scheduled[1]; got.Kind != passfinder.KindManual {
		t.Fatalf("expected manual job, got %+v", got)
	}
	if len(result.Library) != 2 {
		t.Fatalf("expected two library matches, got %+v", result.Library)
	}
	if got := result.Library[0]; got.FileName != "Friends S01E01.mpg" || got.Kind != passfinder.KindPass {
		t.Fatalf("unexpected library match: %+v", got)
	}
	if got := result.Library[1]; got.Kind != passfinder.KindUnknownPass || got.PassName != passfinder.UnknownPass {
		t.Fatalf("expected unknown pass, got %+v", got)
	}

	want := []string{"rules", "jobs", "files", "mediainfo:100", "mediainfo:101"}
	if len(src.calls) != len(want) {
		t.Fatalf("unexpected call sequence %v", src.calls)
	}
	for i := range want {
		if src.calls[i] != want[i] {
			t.Fatalf("unexpected call sequence %v", src.calls)
		}
	}
}

func TestFindNoMatchesIsNotAnError(t *testing.T) {
	src := &fakeSource{
		jobs:  []channelsdvr.Record{{ID: "1-r1", Airing: friendsAiring(1, 1)}},
		files: []channelsdvr.Record{{ID: "5", Airing: friendsAiring(1, 1)}},
	}
	result, err := passfinder.NewFinder(src, nil).Find(context.Background(), passfinder.Criteria{Title: "Cheers"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !result.Empty() {
		t.Fatalf("expected empty result, got %+v", result)
	}
	for _, call := range src.calls {
		if call == "mediainfo:5" {
			t.Fatal("expected no media info lookups for unmatched files")
		}
	}
}

func TestFindKeepsGoingWhenMediaInfoFails(t *testing.T) {
	src := &fakeSource{
		files: []channelsdvr.Record{{ID: "77", RuleID: "r1", Airing: friendsAiring(1, 1)}},
		rules: []channelsdvr.Rule{{ID: "r1", Name: "Friends"}},
	}
	result, err := passfinder.NewFinder(src, nil).Find(context.Background(), passfinder.Criteria{Title: "Friends"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(result.Library) != 1 || result.Library[0].FileName != "" || result.Library[0].PassName != "Friends" {
		t.Fatalf("unexpected library result: %+v", result.Library)
	}
}

func TestFindPropagatesFetchErrors(t *testing.T) {
	boom := errors.New("boom")
	for _, stage := range []string{"rules", "jobs", "files"} {
		t.Run(stage, func(t *testing.T) {
			src := &fakeSource{err: map[string]error{stage: boom}}
			if _, err := passfinder.NewFinder(src, nil).Find(context.Background(), passfinder.Criteria{Title: "x"}); !errors.Is(err, boom) {
				t.Fatalf("expected %s error to propagate, got %v", stage, err)
			}
		})
	}
}
