package csvimport

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Role is the canonical meaning of a CSV column.
type Role string

const (
	RoleBlock       Role = "block"
	RoleYear        Role = "year"
	RoleQuestion    Role = "question"
	RoleOptionA     Role = "option_a"
	RoleOptionB     Role = "option_b"
	RoleOptionC     Role = "option_c"
	RoleOptionD     Role = "option_d"
	RoleCorrect     Role = "correct"
	RoleJustText    Role = "justification_text"
	RoleJustArticle Role = "justification_article"
	RoleJustURL     Role = "justification_url"
)

// RequiredRoles must all be present in the header row.
var RequiredRoles = []Role{
	RoleBlock, RoleQuestion,
	RoleOptionA, RoleOptionB, RoleOptionC, RoleOptionD,
	RoleCorrect, RoleJustText, RoleJustArticle, RoleJustURL,
}

// aliases is keyed by the folded header (see FoldHeader).
var aliases = map[string]Role{
	"bloque": RoleBlock,
	"block":  RoleBlock,

	"ano":  RoleYear,
	"anio": RoleYear,
	"year": RoleYear,

	"textopregunta": RoleQuestion,
	"pregunta":      RoleQuestion,
	"texto":         RoleQuestion,

	"opciona": RoleOptionA,
	"opcionb": RoleOptionB,
	"opcionc": RoleOptionC,
	"opciond": RoleOptionD,

	// misspelt header found in older exports
	"oposicionb": RoleOptionB,

	"respuestacorrecta": RoleCorrect,
	"correcta":          RoleCorrect,

	"textojustificacion": RoleJustText,

	"articulojustificacion": RoleJustArticle,
	"articulo":              RoleJustArticle,

	"urlfuenteoficial": RoleJustURL,
	"urlfuente":        RoleJustURL,
	"fuenteurl":        RoleJustURL,
}

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldHeader strips BOM, accents, case, spaces, underscores and hyphens.
func FoldHeader(h string) string {
	h = strings.TrimSpace(strings.TrimPrefix(h, bom))
	folded, _, err := transform.String(foldChain, h)
	if err != nil {
		folded = h
	}
	folded = strings.ToLower(folded)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '\t', '.':
			return -1
		}
		return r
	}, folded)
}

// MissingColumnsError is returned when required roles have no matching column.
type MissingColumnsError struct {
	Missing []Role
	Found   []string
}

func (e *MissingColumnsError) Error() string {
	names := make([]string, len(e.Missing))
	for i, r := range e.Missing {
		names[i] = string(r)
	}
	return fmt.Sprintf("missing required columns: %s (found: %s)", strings.Join(names, ", "), strings.Join(e.Found, ", "))
}

// MapHeaders resolves each known role to its column index. The first matching column wins.
func MapHeaders(headers []string) (map[Role]int, error) {
	cols := make(map[Role]int, len(aliases))
	for i, h := range headers {
		role, ok := aliases[FoldHeader(h)]
		if !ok {
			continue
		}
		if _, seen := cols[role]; !seen {
			cols[role] = i
		}
	}

	var missing []Role
	for _, r := range RequiredRoles {
		if _, ok := cols[r]; !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing, Found: headers}
	}
	return cols, nil
}
