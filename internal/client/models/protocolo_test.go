package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNovoProtocolo(t *testing.T) {
	p := NovoProtocolo("PROTOC-1", "123", "Carlos")

	require.NotEmpty(t, p.ID)
	assert.Equal(t, "PROTOC-1", p.Numero)
	assert.Equal(t, StatusPendente, p.Status)
	assert.Equal(t, "123", p.PDVCodigo)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestFotosProtocolo_Present(t *testing.T) {
	tests := []struct {
		name  string
		fotos FotosProtocolo
		want  map[TipoFoto]string
	}{
		{
			name:  "none set",
			fotos: FotosProtocolo{},
			want:  map[TipoFoto]string{},
		},
		{
			name:  "one set",
			fotos: FotosProtocolo{Avaria: "data:image/jpeg;base64,xx"},
			want:  map[TipoFoto]string{FotoAvaria: "data:image/jpeg;base64,xx"},
		},
		{
			name: "all set",
			fotos: FotosProtocolo{
				MotoristaPDV: "a",
				LoteProduto:  "b",
				Avaria:       "c",
			},
			want: map[TipoFoto]string{
				FotoMotoristaPDV: "a",
				FotoLoteProduto:  "b",
				FotoAvaria:       "c",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fotos.Present())
		})
	}
}

func TestFotosProtocolo_Set(t *testing.T) {
	var f FotosProtocolo
	f.Set(FotoLoteProduto, "url1")
	f.Set(FotoAvaria, "url2")
	f.Set(TipoFoto("unknown"), "ignored")

	assert.Equal(t, "url1", f.LoteProduto)
	assert.Equal(t, "url2", f.Avaria)
	assert.Empty(t, f.MotoristaPDV)
}
