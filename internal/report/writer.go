package report

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"

	"cdvrpass/internal/logging"
	"cdvrpass/internal/passfinder"
)

const noMatchesMessage = "no matches found."

var (
	scheduledHeader = []string{
		"|----------------------|",
		"| Scheduled recordings |",
		"|----------------------|",
	}
	libraryHeader = []string{
		"|-------------------|",
		"| Library programs  |",
		"|-------------------|",
	}
	headerColors = text.Colors{text.Bold, text.FgCyan}
)

// Options configures a Writer.
type Options struct {
	// Location is the zone scheduled times are shown in; nil means time.Local.
	Location *time.Location
	Colorize bool
	Logger   *slog.Logger
}

// Writer prints lookup reports.
type Writer struct {
	out      io.Writer
	location *time.Location
	colorize bool
	logger   *slog.Logger
}

// NewWriter returns a Writer printing to out.
func NewWriter(out io.Writer, opts Options) *Writer {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	return &Writer{
		out:      out,
		location: loc,
		colorize: opts.Colorize,
		logger:   logging.NewComponentLogger(opts.Logger, "report"),
	}
}

// Preamble announces the server being queried.
func (w *Writer) Preamble(serverURL string) error {
	_, err := fmt.Fprintf(w.out, "\nUsing Channels DVR server located at: %s.\n\nLooking for matches...\n\n", serverURL)
	return err
}

// Result prints the Scheduled and Library sections, each only when it has
// matches, or a notice when neither does.
func (w *Writer) Result(result passfinder.Result) error {
	var b strings.Builder
	if result.Empty() {
		b.WriteString(noMatchesMessage)
		b.WriteString("\n\n")
	}
	w.section(&b, scheduledHeader, result.Scheduled)
	w.section(&b, libraryHeader, result.Library)
	_, err := io.WriteString(w.out, b.String())
	return err
}

func (w *Writer) section(b *strings.Builder, header []string, matches []passfinder.Match) {
	if len(matches) == 0 {
		return
	}
	for _, line := range header {
		if w.colorize {
			line = headerColors.Sprint(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	for _, m := range matches {
		b.WriteString(w.Entry(m))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

// Entry renders one match. The result always ends with a newline.
func (w *Writer) Entry(m passfinder.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, " - %s \"%s\" ", m.Category, m.Title)
	b.WriteString(episodeSuffix(m.Program))

	switch m.Kind {
	case passfinder.KindImported:
		b.WriteString("is an import:\n")
		name := m.FileName
		if name == "" {
			name = m.ImportPath
		}
		fmt.Fprintf(&b, "    \"%s\"\n", name)
	case passfinder.KindManual:
		b.WriteString("is a manual recording.\n")
		w.writeWhereOrWhen(&b, m.Program)
	default:
		fmt.Fprintf(&b, "triggered by pass: \"%s\"\n", m.PassName)
		w.writeWhereOrWhen(&b, m.Program)
	}
	return b.String()
}

// writeWhereOrWhen adds the recorded file name, or the scheduled start time
// for programs not recorded yet.
func (w *Writer) writeWhereOrWhen(b *strings.Builder, p passfinder.Program) {
	if p.FileName != "" {
		fmt.Fprintf(b, "    \"%s\"\n", p.FileName)
		return
	}
	if p.StartTime == "" {
		return
	}
	when, err := LocalTime(p.StartTime, w.location)
	if err != nil {
		w.logger.Warn("could not convert start time; showing it verbatim",
			slog.String("start_time", p.StartTime),
			slog.Any("error", err),
		)
		when = p.StartTime
	}
	fmt.Fprintf(b, "   will be recorded on %s\n", when)
}

func episodeSuffix(p passfinder.Program) string {
	if !p.IsSeriesLike() {
		return ""
	}
	var suffix string
	if p.SeasonNumber != 0 {
		suffix += "S" + strconv.Itoa(p.SeasonNumber)
	}
	if p.EpisodeNumber != 0 {
		suffix += "E" + strconv.Itoa(p.EpisodeNumber)
	}
	if suffix == "" {
		return ""
	}
	return suffix + " "
}
