package ingest

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"mentoria_engine/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildSheet writes rows into an in-memory xlsx, first row being the header.
func buildSheet(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, ref, cell))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestNewReader_ValidMentoriaHeader(t *testing.T) {
	buf := buildSheet(t, [][]string{
		{"id_aluno", "nome_aluno", "consultor", "turma", "ciclo", "numero_sessao", "data_sessao", "presenca", "tarefa", "engajamento"},
		{"A001", "Maria Silva", "João Souza", "T1", "C1", "2", "14/03/2024", "Presente", "Entregue", "5"},
	})

	r, err := NewReader(buf, model.FileMentoria)
	require.NoError(t, err)
	assert.Equal(t, 1, r.RowCount)
	assert.Equal(t, 10, r.ColCount)

	rows := r.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Number, "data rows start at 2, header is row 1")
	assert.Equal(t, "A001", rows[0].Get("id_aluno"))
	assert.Equal(t, "João Souza", rows[0].Get("consultor"))
}

func TestNewReader_HeaderIsCaseInsensitive(t *testing.T) {
	buf := buildSheet(t, [][]string{
		{"ID_Aluno", " Nome_Aluno ", "CONSULTOR", "turma", "ciclo", "numero_sessao", "data_sessao", "presenca", "tarefa", "engajamento"},
	})

	_, err := NewReader(buf, model.FileMentoria)
	assert.NoError(t, err)
}

func TestNewReader_MissingRequiredColumn(t *testing.T) {
	// No "presenca" column: the whole file must be rejected.
	buf := buildSheet(t, [][]string{
		{"id_aluno", "nome_aluno", "consultor", "turma", "ciclo", "numero_sessao", "data_sessao", "tarefa", "engajamento"},
		{"A001", "Maria", "João", "T1", "C1", "2", "14/03/2024", "Entregue", "5"},
	})

	_, err := NewReader(buf, model.FileMentoria)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrColumnSignature))

	var appErr *model.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "COLUMN_SIGNATURE", appErr.Code)
	assert.Equal(t, "presenca", appErr.Field)
}

func TestNewReader_MissingOptionalColumnIsFine(t *testing.T) {
	// "ciclo" is optional on mentoria files.
	buf := buildSheet(t, [][]string{
		{"id_aluno", "nome_aluno", "consultor", "turma", "numero_sessao", "data_sessao", "presenca", "tarefa", "engajamento"},
		{"A001", "Maria", "João", "T1", "2", "14/03/2024", "Presente", "Entregue", "5"},
	})

	r, err := NewReader(buf, model.FileMentoria)
	require.NoError(t, err)
	rows := r.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Get("ciclo"))
}

func TestNewReader_GarbageInput(t *testing.T) {
	_, err := NewReader(strings.NewReader("this is not a spreadsheet"), model.FileMentoria)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestNewReader_UnknownFileType(t *testing.T) {
	buf := buildSheet(t, [][]string{{"col"}})
	_, err := NewReader(buf, model.FileType("notas"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"14/03/2024", time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), false},
		{"2024-03-14", time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), false},
		{"14-03-2024", time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), false},
		{"5/3/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{"March 14, 2024", time.Time{}, true},
		{"", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestParsePresence(t *testing.T) {
	tests := []struct {
		in      string
		want    model.Presence
		wantErr bool
	}{
		{"Presente", model.Present, false},
		{"PRESENTE", model.Present, false},
		{"Aluno presente na sessão", model.Present, false},
		{"Ausente", model.Absent, false},
		{"ausente (justificado)", model.Absent, false},
		{"sim", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePresence(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseTaskStatus(t *testing.T) {
	assert.Equal(t, model.TaskNone, ParseTaskStatus(""))
	assert.Equal(t, model.TaskDelivered, ParseTaskStatus("Entregue"))
	assert.Equal(t, model.TaskNotDelivered, ParseTaskStatus("Não entregue"))
	assert.Equal(t, model.TaskNotDelivered, ParseTaskStatus("nao entregue"))
	assert.Equal(t, model.TaskNone, ParseTaskStatus("N/A"))
}

func TestParseRating(t *testing.T) {
	got, err := ParseRating("4")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4, *got)

	got, err = ParseRating("")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Comma decimals occur in hand-edited sheets.
	got, err = ParseRating("4,0")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4, *got)

	_, err = ParseRating("6")
	assert.Error(t, err)
	_, err = ParseRating("0")
	assert.Error(t, err)
	_, err = ParseRating("alto")
	assert.Error(t, err)
}

func TestParseScore(t *testing.T) {
	got, err := ParseScore("7,5")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 7.5, *got)

	got, err = ParseScore("Sem avaliações respondidas")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseScore("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseScore("bom")
	assert.Error(t, err)
}

func TestParseSessionNumber(t *testing.T) {
	got, err := ParseSessionNumber("3")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = ParseSessionNumber("0")
	assert.Error(t, err)
	_, err = ParseSessionNumber("")
	assert.Error(t, err)
}
