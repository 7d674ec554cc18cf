package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"mentoria_engine/internal/model"
)

// noAssessmentsLiteral is what the source system writes when a student has
// answered no lesson assessments yet.
const noAssessmentsLiteral = "sem avaliações respondidas"

// Row is one data row with access by declared column name.
type Row struct {
	// Number is 1-based and counts the header row, matching what a person
	// sees in their spreadsheet application.
	Number int

	index map[string]int
	cells []string
}

// Get returns the trimmed cell under a declared column, "" when the column or
// cell is absent.
func (r Row) Get(col string) string {
	pos, ok := r.index[col]
	if !ok || pos >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[pos])
}

// Reader iterates the first sheet of an xlsx file after validating its header
// against the declared file type.
type Reader struct {
	schema Schema
	index  map[string]int
	rows   [][]string

	ColCount int
	RowCount int
}

// NewReader parses the spreadsheet and checks the column signature. Returns
// ErrColumnSignature (wrapped) when the header does not match the declared
// type, and ErrInvalidInput for files excelize cannot read at all.
func NewReader(src io.Reader, fileType model.FileType) (*Reader, error) {
	schema, ok := SchemaFor(fileType)
	if !ok {
		return nil, model.NewAppError("UNKNOWN_FILE_TYPE",
			"no column contract declared for file type "+string(fileType), "type",
			model.ErrInvalidInput)
	}

	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, model.NewAppError("UNREADABLE_FILE",
			"file could not be parsed as a spreadsheet", "",
			model.ErrInvalidInput)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, model.NewAppError("EMPTY_FILE", "file has no sheets", "",
			model.ErrInvalidInput)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ingest.NewReader: %w", err)
	}
	if len(rows) == 0 {
		return nil, model.NewAppError("EMPTY_FILE", "file has no header row", "",
			model.ErrInvalidInput)
	}

	index, err := resolveHeader(schema, rows[0])
	if err != nil {
		return nil, err
	}

	return &Reader{
		schema:   schema,
		index:    index,
		rows:     rows,
		ColCount: len(rows[0]),
		RowCount: len(rows) - 1,
	}, nil
}

// Rows returns every data row; the header is row 1 and excluded.
func (r *Reader) Rows() []Row {
	out := make([]Row, 0, len(r.rows)-1)
	for i, cells := range r.rows[1:] {
		out = append(out, Row{Number: i + 2, index: r.index, cells: cells})
	}
	return out
}

// ParseDate accepts the formats that actually occur in the source files.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"02/01/2006", "2006-01-02", "02-01-2006", "2/1/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParsePresence does a case-insensitive substring match on the literal
// presente/ausente markers.
func ParsePresence(s string) (model.Presence, error) {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "presente"):
		return model.Present, nil
	case strings.Contains(lower, "ausente"):
		return model.Absent, nil
	default:
		return "", fmt.Errorf("unrecognized presence %q", s)
	}
}

// ParseTaskStatus scans free text for the delivery markers. Empty text means
// the session carried no task.
func ParseTaskStatus(s string) model.TaskStatus {
	lower := strings.ToLower(s)
	switch {
	case lower == "":
		return model.TaskNone
	case strings.Contains(lower, "não") || strings.Contains(lower, "nao"):
		return model.TaskNotDelivered
	case strings.Contains(lower, "entregue"):
		return model.TaskDelivered
	default:
		return model.TaskNone
	}
}

// ParseRating reads the 1-5 engagement rating; empty cells are nil, anything
// outside 1-5 is a validation failure the caller records as a row issue.
func ParseRating(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if ferr != nil {
			return nil, fmt.Errorf("unrecognized rating %q", s)
		}
		v = int(f)
	}
	if v < 1 || v > 5 {
		return nil, fmt.Errorf("rating %d outside 1-5", v)
	}
	return &v, nil
}

// ParseScore reads a numeric score, treating the "no assessments" literal and
// empty cells as null. Comma decimal separators are accepted.
func ParseScore(s string) (*float64, error) {
	if s == "" || strings.ToLower(s) == noAssessmentsLiteral {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return nil, fmt.Errorf("unrecognized score %q", s)
	}
	return &v, nil
}

// ParseSessionNumber reads the 1-based session ordinal.
func ParseSessionNumber(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return 0, fmt.Errorf("unrecognized session number %q", s)
	}
	return v, nil
}
