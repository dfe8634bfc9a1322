// Package passfinder answers "which pass recorded this?" for a Channels DVR
// server.
//
// Finder pulls the rules, the scheduled jobs, and the library files, keeps
// the entries whose airing matches a Criteria, resolves recorded file names,
// and classifies each match as an import, a manual recording, or a recording
// triggered by a pass. Rendering lives in the report package.
package passfinder
