// Package report renders pass lookup results as the plain-text report printed
// by the CLI, converting scheduled start times from UTC to the display zone.
package report
