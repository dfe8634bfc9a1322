package main

import (
	"strings"
	"testing"

	"cdvrpass/internal/testsupport"
)

func TestPassesCommandListsRules(t *testing.T) {
	isolateConfig(t)
	srv := testsupport.NewDVRServer(t, testsupport.DVRFixture{
		Rules: []map[string]any{
			{"ID": "r2", "Name": "Seinfeld", "Query": "Seinfeld", "Paused": true},
			{"ID": "r1", "Name": "Friends", "Query": "Friends"},
		},
	})

	args := append([]string{"passes"}, serverFlags(t, srv)...)
	out, _, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("passes: %v", err)
	}
	friends := strings.Index(out, "Friends")
	seinfeld := strings.Index(out, "Seinfeld")
	if friends < 0 || seinfeld < 0 || friends > seinfeld {
		t.Fatalf("expected passes sorted by name:\n%s", out)
	}
	if !strings.Contains(out, "2 pass(es) on "+srv.URL) {
		t.Fatalf("expected summary line:\n%s", out)
	}
	if srv.Calls("/dvr/jobs") != 0 {
		t.Fatal("passes should only fetch rules")
	}
}

func TestPassesCommandFilterAndEmpty(t *testing.T) {
	isolateConfig(t)
	srv := testsupport.NewDVRServer(t, testsupport.DVRFixture{
		Rules: []map[string]any{{"ID": "r1", "Name": "Friends"}},
	})

	args := append([]string{"passes", "--name", "Cheers"}, serverFlags(t, srv)...)
	out, _, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("passes: %v", err)
	}
	if strings.TrimSpace(out) != "No passes found" {
		t.Fatalf("unexpected output %q", out)
	}
}
