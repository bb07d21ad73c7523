package cli

import (
	"github.com/logifrete/protocolos/internal/pdvimport"
)

// Importar parses a PDV spreadsheet and prints a short summary. The parsed
// rows are what the office uploads to the backend; here they are shown so
// the driver can confirm the file reads correctly before handing it over.
func (a *App) Importar(path string) {
	pdvs, err := pdvimport.ImportFile(path)
	if err != nil {
		printlnFn("Import failed:", err)
		return
	}

	printfFn("%d PDV(s) lidos de %s\n", len(pdvs), path)
	preview := pdvs
	if len(preview) > 5 {
		preview = preview[:5]
	}
	for _, p := range preview {
		printfFn("  %s  %s  %s\n", p.Codigo, p.Nome, p.Cidade)
	}
	if len(pdvs) > len(preview) {
		printfFn("  ... e mais %d\n", len(pdvs)-len(preview))
	}
}
