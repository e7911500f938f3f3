package csvimport

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Letters are the accepted correct-answer letters, in option order.
var Letters = [4]string{"A", "B", "C", "D"}

var (
	reBlockDigit = regexp.MustCompile(`\d+`)
	reRoman      = regexp.MustCompile(`\b(I{1,3})\b`)
)

// Row is one data line with every role already resolved.
type Row struct {
	Line        int
	Block       int
	Year        string
	Text        string
	Options     [4]string
	Correct     string
	JustText    string
	JustArticle string
	JustURL     string
}

var (
	ErrInvalidLetter = errors.New("correct answer letter must be one of A, B, C, D")
	ErrEmptyCorrect  = errors.New("the option marked as correct is empty")
	ErrTooFewOptions = errors.New("at least two non-empty options are required")
)

// ParseBlock accepts "2", "Bloque 2", "II" and similar. Anything else is block 1.
func ParseBlock(v string) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return 1
	}
	if m := reBlockDigit.FindString(v); m != "" {
		if m == "2" {
			return 2
		}
		return 1
	}
	if m := reRoman.FindStringSubmatch(strings.ToUpper(v)); m != nil && m[1] == "II" {
		return 2
	}
	return 1
}

// CorrectIndex is the option index named by the correct letter, or -1.
func (r Row) CorrectIndex() int {
	for i, l := range Letters {
		if r.Correct == l {
			return i
		}
	}
	return -1
}

// Validate applies the per-row answer rules. Empty question text is not an
// error here; callers skip those rows.
func (r Row) Validate() error {
	idx := r.CorrectIndex()
	if idx < 0 {
		return fmt.Errorf("%w (got %q)", ErrInvalidLetter, r.Correct)
	}
	if r.Options[idx] == "" {
		return fmt.Errorf("%w: %s", ErrEmptyCorrect, r.Correct)
	}
	filled := 0
	for _, o := range r.Options {
		if o != "" {
			filled++
		}
	}
	if filled < 2 {
		return ErrTooFewOptions
	}
	return nil
}

// Source is the label stored as the question's original source.
func (r Row) Source() string {
	if r.Year != "" {
		return "Examen oficial " + r.Year
	}
	return "Examen oficial"
}
