package cli

import (
	"context"
	"os"

	"github.com/logifrete/protocolos/internal/client/models"
)

// fotoPrompts maps the guided photo questions to their kinds, in the order
// drivers are used to from the mobile app.
var fotoPrompts = []struct {
	label string
	tipo  models.TipoFoto
}{
	{"Foto do motorista no PDV (caminho do arquivo, vazio para pular)", models.FotoMotoristaPDV},
	{"Foto do lote do produto (caminho do arquivo, vazio para pular)", models.FotoLoteProduto},
	{"Foto da avaria (caminho do arquivo, vazio para pular)", models.FotoAvaria},
}

// Novo runs the guided protocolo entry and submits the result.
func (a *App) Novo(ctx context.Context) {
	pdv, err := GetSimpleText(a.reader, "Código do PDV", os.Stdout)
	if err != nil {
		printlnFn("Aborted:", err)
		return
	}
	motorista, err := GetSimpleText(a.reader, "Nome do motorista", os.Stdout)
	if err != nil {
		printlnFn("Aborted:", err)
		return
	}

	p := models.NovoProtocolo("", pdv, motorista)

	for {
		produto, err := GetSimpleText(a.reader, "Produto (vazio para terminar os itens)", os.Stdout)
		if err != nil {
			printlnFn("Aborted:", err)
			return
		}
		if produto == "" {
			break
		}

		qtd, err := GetInt(a.reader, "Quantidade", 1, os.Stdout)
		if err != nil {
			printlnFn(err)
			continue
		}
		motivo, err := GetSimpleText(a.reader, "Motivo (avaria, falta, troca...)", os.Stdout)
		if err != nil {
			printlnFn("Aborted:", err)
			return
		}

		p.Itens = append(p.Itens, models.NovoItem(produto, qtd, motivo))
	}

	if len(p.Itens) == 0 {
		printlnFn("Um protocolo precisa de pelo menos um item.")
		return
	}

	for _, fp := range fotoPrompts {
		path, err := GetSimpleText(a.reader, fp.label, os.Stdout)
		if err != nil {
			printlnFn("Aborted:", err)
			return
		}
		if path == "" {
			continue
		}
		if err := a.service.AttachFoto(&p, fp.tipo, path); err != nil {
			printlnFn("Could not attach photo:", err)
		}
	}

	created, queued, err := a.service.Submit(ctx, p)
	if err != nil {
		printlnFn("Submission failed:", err)
		return
	}
	if queued {
		printfFn("Protocolo %s salvo localmente, será enviado quando houver conexão.\n", created.Numero)
		return
	}
	printfFn("Protocolo %s enviado.\n", created.Numero)
}

// Pendentes lists the protocolos still waiting for sync.
func (a *App) Pendentes() {
	pending := a.buffer.Pending()
	if len(pending) == 0 {
		printlnFn("Nenhum protocolo pendente.")
		return
	}

	printfFn("%d protocolo(s) pendente(s):\n", len(pending))
	for _, e := range pending {
		printfFn("  %s  criado %s  itens=%d\n",
			e.Protocolo.Numero,
			e.CreatedAt.Format("2006-01-02 15:04"),
			len(e.Protocolo.Itens))
	}
}
