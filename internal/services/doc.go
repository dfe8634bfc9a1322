// Package services defines shared utilities consumed by the DVR client and the
// pass lookup.
//
// Key responsibilities:
//   - Context helpers that stamp correlation identifiers and report sections
//     for logging.
//   - Structured error markers plus the Wrap helper so callers can tell
//     transport failures from bad payloads or misconfiguration.
package services
