// Package ingest turns uploaded spreadsheets into typed rows. Each file type
// declares its column contract once; the signature is checked a single time at
// file open and row access goes through the resolved column index, never ad
// hoc string indexing.
package ingest

import (
	"strings"

	"mentoria_engine/internal/model"
)

// Column is one declared column of a file type.
type Column struct {
	Name     string
	Required bool
}

// Schema is the fixed column contract of a file type. Header matching is
// case-insensitive and whitespace-trimmed; source files are hand-edited.
type Schema struct {
	Type    model.FileType
	Columns []Column
}

var schemas = map[model.FileType]Schema{
	model.FileMentoria: {
		Type: model.FileMentoria,
		Columns: []Column{
			{Name: "id_aluno", Required: true},
			{Name: "nome_aluno", Required: true},
			{Name: "consultor", Required: true},
			{Name: "turma", Required: true},
			{Name: "ciclo", Required: false},
			{Name: "numero_sessao", Required: true},
			{Name: "data_sessao", Required: true},
			{Name: "presenca", Required: true},
			{Name: "tarefa", Required: true},
			{Name: "engajamento", Required: true},
		},
	},
	model.FileEventos: {
		Type: model.FileEventos,
		Columns: []Column{
			{Name: "id_aluno", Required: true},
			{Name: "nome_aluno", Required: true},
			{Name: "turma", Required: true},
			{Name: "titulo_evento", Required: true},
			{Name: "data_evento", Required: true},
			{Name: "presenca", Required: true},
		},
	},
	model.FilePerformance: {
		Type: model.FilePerformance,
		Columns: []Column{
			{Name: "id_aluno", Required: true},
			{Name: "nome_aluno", Required: true},
			{Name: "email", Required: false},
			{Name: "id_turma", Required: true},
			{Name: "nome_turma", Required: true},
			{Name: "id_competencia", Required: true},
			{Name: "nome_competencia", Required: true},
			{Name: "progresso", Required: true},
			{Name: "media_avaliacoes", Required: false},
		},
	},
}

// SchemaFor returns the declared contract for a file type.
func SchemaFor(t model.FileType) (Schema, bool) {
	s, ok := schemas[t]
	return s, ok
}

// resolveHeader maps declared column names onto header positions. A missing
// required column fails the whole file with ErrColumnSignature.
func resolveHeader(schema Schema, header []string) (map[string]int, error) {
	normalized := make(map[string]int, len(header))
	for i, h := range header {
		normalized[strings.ToLower(strings.TrimSpace(h))] = i
	}

	index := make(map[string]int, len(schema.Columns))
	for _, col := range schema.Columns {
		pos, ok := normalized[col.Name]
		if !ok {
			if col.Required {
				return nil, model.NewAppError(
					"COLUMN_SIGNATURE",
					"required column missing for declared file type "+string(schema.Type)+": "+col.Name,
					col.Name,
					model.ErrColumnSignature,
				)
			}
			continue
		}
		index[col.Name] = pos
	}
	return index, nil
}
