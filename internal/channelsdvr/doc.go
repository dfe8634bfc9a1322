// Package channelsdvr is a read-only client for the Channels DVR server's HTTP
// API.
//
// It exposes the four endpoints the pass lookup needs: recording rules
// (/dvr/rules), scheduled jobs (/dvr/jobs), library files (/dvr/files), and
// per-file media info (/dvr/files/{id}/mediainfo.json). Failures are tagged
// with the services error markers so callers can tell an unreachable server
// from a malformed response.
package channelsdvr
