// Package csvimport turns official-exam CSV exports into normalized rows.
package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNoHeader = errors.New("the CSV file has no header row")

type Reader struct {
	r    *csv.Reader
	cols map[Role]int
	line int
}

// NewReader decodes raw and maps its header row. Structural problems (no
// header, missing required columns, unreadable bytes) are returned here.
func NewReader(raw []byte) (*Reader, error) {
	data, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	headers, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols, err := MapHeaders(headers)
	if err != nil {
		return nil, err
	}
	return &Reader{r: r, cols: cols, line: 1}, nil
}

// Next returns the following data row, or io.EOF. Line numbers start at 2.
func (rd *Reader) Next() (Row, error) {
	rec, err := rd.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}
		rd.line++
		return Row{Line: rd.line}, fmt.Errorf("line %d: %w", rd.line, err)
	}
	rd.line++

	get := func(role Role) string {
		i, ok := rd.cols[role]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	row := Row{
		Line:        rd.line,
		Block:       ParseBlock(get(RoleBlock)),
		Year:        get(RoleYear),
		Text:        get(RoleQuestion),
		JustText:    get(RoleJustText),
		JustArticle: get(RoleJustArticle),
		JustURL:     get(RoleJustURL),
	}
	for i, role := range []Role{RoleOptionA, RoleOptionB, RoleOptionC, RoleOptionD} {
		row.Options[i] = get(role)
	}
	if c := get(RoleCorrect); c != "" {
		row.Correct = strings.ToUpper(string([]rune(c)[0]))
	}
	return row, nil
}
