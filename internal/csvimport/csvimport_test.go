package csvimport

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const header = "Bloque,Año,Texto_Pregunta,Opcion_A,Opcion_B,Opcion_C,Opcion_D,Respuesta_Correcta,Texto_Justificacion,Articulo_Justificacion,URL_Fuente_Oficial\n"

func TestFoldHeader(t *testing.T) {
	tests := map[string]string{
		"Año":                    "ano",
		" Opción_A ":             "opciona",
		"\ufeffBloque":           "bloque",
		"Artículo_Justificación": "articulojustificacion",
		"URL Fuente-Oficial":     "urlfuenteoficial",
		"RESPUESTA_CORRECTA":     "respuestacorrecta",
	}
	for in, want := range tests {
		assert.Equal(t, want, FoldHeader(in), in)
	}
}

func TestMapHeadersAcceptsAliases(t *testing.T) {
	cols, err := MapHeaders([]string{
		"\ufeffBloque", "Anio", "Pregunta", "Opción_A", "Oposicion_B", "Opcion C", "opcion_d",
		"Correcta", "Texto_Justificación", "Artículo", "Fuente_URL",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, cols[RoleBlock])
	assert.Equal(t, 1, cols[RoleYear])
	assert.Equal(t, 4, cols[RoleOptionB])
	assert.Equal(t, 10, cols[RoleJustURL])
}

func TestMapHeadersReportsMissing(t *testing.T) {
	_, err := MapHeaders([]string{"Bloque", "Texto_Pregunta", "Opcion_A"})
	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Missing, RoleOptionB)
	assert.Contains(t, missing.Missing, RoleJustURL)
	assert.NotContains(t, missing.Missing, RoleBlock)
}

func TestParseBlock(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2", 2},
		{"1", 1},
		{"Bloque 2", 2},
		{"bloque II", 2},
		{"II", 2},
		{"I", 1},
		{"", 1},
		{"tercero", 1},
		{"3", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseBlock(tt.in), tt.in)
	}
}

func TestRowValidate(t *testing.T) {
	base := Row{Text: "¿Pregunta?", Options: [4]string{"a", "b", "c", "d"}, Correct: "C"}
	require.NoError(t, base.Validate())

	bad := base
	bad.Correct = "E"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidLetter)

	emptyCorrect := base
	emptyCorrect.Options[2] = ""
	assert.ErrorIs(t, emptyCorrect.Validate(), ErrEmptyCorrect)

	single := Row{Options: [4]string{"solo", "", "", ""}, Correct: "A"}
	assert.ErrorIs(t, single.Validate(), ErrTooFewOptions)
}

func TestReaderParsesRows(t *testing.T) {
	data := "\ufeff" + header +
		"Bloque II,2023,¿Qué es?,uno,dos,tres,cuatro,c) tres,Porque sí,Art. 1,https://boe.es\n" +
		"1,,Otra,si,no,,,a,,,\n"

	rd, err := NewReader([]byte(data))
	require.NoError(t, err)

	row, err := rd.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, row.Line)
	assert.Equal(t, 2, row.Block)
	assert.Equal(t, "C", row.Correct)
	assert.Equal(t, 2, row.CorrectIndex())
	assert.Equal(t, "Examen oficial 2023", row.Source())
	assert.Equal(t, "Art. 1", row.JustArticle)

	row, err = rd.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, row.Line)
	assert.Equal(t, 1, row.Block)
	assert.Equal(t, "Examen oficial", row.Source())
	assert.NoError(t, row.Validate())

	_, err = rd.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestReaderFallsBackToLatin1(t *testing.T) {
	utf := header + "1,2020,¿Cuál es la capital?,Madrid,Sevilla,,,A,Es Madrid,Art. 5,https://x\n"
	latin, err := charmap.ISO8859_1.NewEncoder().String(utf)
	require.NoError(t, err)

	rd, err := NewReader([]byte(latin))
	require.NoError(t, err)
	row, err := rd.Next()
	require.NoError(t, err)
	assert.Equal(t, "¿Cuál es la capital?", row.Text)
}

func TestReaderStructuralErrors(t *testing.T) {
	_, err := NewReader(nil)
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = NewReader([]byte("Bloque,Texto_Pregunta\n1,x\n"))
	var missing *MissingColumnsError
	assert.ErrorAs(t, err, &missing)
}
