// Package pdvimport parses PDV (point-of-sale customer) spreadsheets the
// distributor's office exports, in CSV or Excel form. Column positions are
// discovered from the header row by case-insensitive substring match, since
// every unit exports with slightly different header names.
package pdvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// PDV is one imported customer row.
type PDV struct {
	Codigo   string
	Nome     string
	Bairro   string
	CNPJ     string
	Endereco string
	Cidade   string
}

var ErrNoCodigo = errors.New("no codigo column found")

// columns maps the detected header indexes; -1 means absent.
type columns struct {
	codigo, nome, bairro, cnpj, endereco, cidade int
}

func detectColumns(header []string) columns {
	cols := columns{codigo: -1, nome: -1, bairro: -1, cnpj: -1, endereco: -1, cidade: -1}

	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		switch {
		case cols.codigo < 0 && strings.Contains(name, "codigo"):
			cols.codigo = i
		case cols.nome < 0 && (strings.Contains(name, "fantasia") || strings.Contains(name, "nome")):
			cols.nome = i
		case cols.bairro < 0 && strings.Contains(name, "bairro"):
			cols.bairro = i
		case cols.cnpj < 0 && strings.Contains(name, "cnpj"):
			cols.cnpj = i
		case cols.endereco < 0 && (strings.Contains(name, "endereco") || strings.Contains(name, "endereço")):
			cols.endereco = i
		case cols.cidade < 0 && strings.Contains(name, "cidade"):
			cols.cidade = i
		}
	}
	return cols
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// cleanCodigo strips thousand separators Excel likes to inject into numeric
// customer codes. Only the codigo column gets this treatment.
func cleanCodigo(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, ",", "")
}

func rowsToPDVs(rows [][]string) ([]PDV, error) {
	if len(rows) < 2 {
		return nil, nil
	}

	cols := detectColumns(rows[0])
	if cols.codigo < 0 {
		return nil, ErrNoCodigo
	}

	var pdvs []PDV
	for _, row := range rows[1:] {
		codigo := cleanCodigo(cell(row, cols.codigo))
		nome := cell(row, cols.nome)
		if codigo == "" || nome == "" {
			continue
		}

		pdvs = append(pdvs, PDV{
			Codigo:   codigo,
			Nome:     nome,
			Bairro:   cell(row, cols.bairro),
			CNPJ:     cell(row, cols.cnpj),
			Endereco: cell(row, cols.endereco),
			Cidade:   cell(row, cols.cidade),
		})
	}
	return pdvs, nil
}

// ImportFile parses the spreadsheet at path. Supported extensions:
// .csv, .xlsx, .xls.
func ImportFile(path string) ([]PDV, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return importCSV(path)
	case ".xlsx", ".xls":
		return importExcel(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func importCSV(path string) ([]PDV, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	// unit exports alternate between comma and semicolon; sniff the header
	sep := ','
	if line, _, _ := strings.Cut(string(data), "\n"); strings.Contains(line, ";") {
		sep = ';'
	}

	r := csv.NewReader(strings.NewReader(string(data)))
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rowsToPDVs(rows)
}

func importExcel(path string) ([]PDV, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rowsToPDVs(rows)
}
