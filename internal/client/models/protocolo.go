// Package models defines the protocolo domain types shared by the client
// components: the record itself, its line items and photos, and the
// offline-buffer envelope.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Status values a protocolo moves through on the backend. The client only
// ever creates records in StatusPendente; the rest of the workflow is
// office-side.
const (
	StatusPendente  = "pendente"
	StatusEmAnalise = "em_analise"
	StatusAprovado  = "aprovado"
	StatusRejeitado = "rejeitado"
)

// TipoFoto identifies which of the up to three photos a protocolo carries.
// The string values double as object-store path segments.
type TipoFoto string

const (
	FotoMotoristaPDV TipoFoto = "motorista_pdv"
	FotoLoteProduto  TipoFoto = "lote_produto"
	FotoAvaria       TipoFoto = "avaria"
)

// FotosProtocolo holds one optional image per TipoFoto. Before upload each
// field is a data URI; after upload it is the durable public URL.
type FotosProtocolo struct {
	MotoristaPDV string `json:"fotoMotoristaPdv,omitempty"`
	LoteProduto  string `json:"fotoLoteProduto,omitempty"`
	Avaria       string `json:"fotoAvaria,omitempty"`
}

// Present returns the photos that are actually set, keyed by kind.
func (f FotosProtocolo) Present() map[TipoFoto]string {
	m := make(map[TipoFoto]string, 3)
	if f.MotoristaPDV != "" {
		m[FotoMotoristaPDV] = f.MotoristaPDV
	}
	if f.LoteProduto != "" {
		m[FotoLoteProduto] = f.LoteProduto
	}
	if f.Avaria != "" {
		m[FotoAvaria] = f.Avaria
	}
	return m
}

// Set assigns the value for the given kind. Unknown kinds are ignored.
func (f *FotosProtocolo) Set(tipo TipoFoto, value string) {
	switch tipo {
	case FotoMotoristaPDV:
		f.MotoristaPDV = value
	case FotoLoteProduto:
		f.LoteProduto = value
	case FotoAvaria:
		f.Avaria = value
	}
}

// ItemProtocolo is one line item of a protocolo (a product with a quantity
// and the reason it is being reported).
type ItemProtocolo struct {
	ID         string `json:"id"`
	Produto    string `json:"produto"`
	Quantidade int    `json:"quantidade"`
	Motivo     string `json:"motivo"`
}

// Protocolo is a driver-submitted incident or replenishment report.
// Once synced to the backend it is immutable from the client's perspective.
type Protocolo struct {
	ID          string          `json:"id"`
	Numero      string          `json:"numero"`
	CreatedAt   time.Time       `json:"createdAt"`
	Status      string          `json:"status"`
	PDVCodigo   string          `json:"pdvCodigo,omitempty"`
	Motorista   string          `json:"motorista,omitempty"`
	Observacoes string          `json:"observacoes,omitempty"`
	Itens       []ItemProtocolo `json:"itens,omitempty"`
	Fotos       FotosProtocolo  `json:"fotos"`
}

// NovoProtocolo builds a pending protocolo with a fresh id and timestamp.
func NovoProtocolo(numero, pdvCodigo, motorista string) Protocolo {
	return Protocolo{
		ID:        uuid.NewString(),
		Numero:    numero,
		CreatedAt: time.Now(),
		Status:    StatusPendente,
		PDVCodigo: pdvCodigo,
		Motorista: motorista,
	}
}

// NovoItem builds a line item with a fresh id.
func NovoItem(produto string, quantidade int, motivo string) ItemProtocolo {
	return ItemProtocolo{
		ID:         uuid.NewString(),
		Produto:    produto,
		Quantidade: quantidade,
		Motivo:     motivo,
	}
}
