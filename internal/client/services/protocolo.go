// Package services composes the submission flow: normalize photos, upload
// them, create the protocolo remotely, and fall back to the offline buffer
// whenever the backend cannot be reached.
package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/logifrete/protocolos/internal/client/connectivity"
	"github.com/logifrete/protocolos/internal/client/models"
	"github.com/logifrete/protocolos/internal/client/notify"
	"github.com/logifrete/protocolos/internal/client/offline"
	"github.com/logifrete/protocolos/internal/imagex"
	"github.com/logifrete/protocolos/internal/logging"
)

// Service is the submission surface the CLI consumes. *ProtocoloService is
// the real implementation; tests substitute a stub.
type Service interface {
	AttachFoto(p *models.Protocolo, tipo models.TipoFoto, path string) error
	Submit(ctx context.Context, p models.Protocolo) (models.Protocolo, bool, error)
	SyncNow(ctx context.Context) error
}

// RemoteAPI is the slice of the backend client the service needs.
type RemoteAPI interface {
	CreateProtocolo(ctx context.Context, p models.Protocolo) (models.Protocolo, error)
}

// FotoUploader is the slice of the storage bridge the service needs.
type FotoUploader interface {
	UploadAll(ctx context.Context, fotos models.FotosProtocolo, numero string) models.FotosProtocolo
}

type ProtocoloService struct {
	remote   RemoteAPI
	fotos    FotoUploader
	buffer   *offline.Buffer
	monitor  *connectivity.Monitor
	notifier notify.Notifier
	log      logging.Logger

	maxImageWidth int
	imageQuality  float64
	now           func() time.Time
}

func NewProtocoloService(
	remote RemoteAPI,
	fotos FotoUploader,
	buffer *offline.Buffer,
	monitor *connectivity.Monitor,
	notifier notify.Notifier,
	log logging.Logger,
	maxImageWidth int,
	imageQuality float64,
) *ProtocoloService {
	return &ProtocoloService{
		remote:        remote,
		fotos:         fotos,
		buffer:        buffer,
		monitor:       monitor,
		notifier:      notifier,
		log:           log.With("component", "protocolo"),
		maxImageWidth: maxImageWidth,
		imageQuality:  imageQuality,
		now:           time.Now,
	}
}

// GerarNumero builds a human-readable protocolo number, unique enough for
// the object-store path prefix even when generated offline.
func (s *ProtocoloService) GerarNumero() string {
	return fmt.Sprintf("PROTOC-%s-%s", s.now().Format("20060102"), uuid.NewString()[:8])
}

// AttachFoto reads the image at path, normalizes it, and attaches the
// resulting data URI to the protocolo under the given kind.
func (s *ProtocoloService) AttachFoto(p *models.Protocolo, tipo models.TipoFoto, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open photo: %w", err)
	}
	defer f.Close()

	uri, err := imagex.Compress(f, s.maxImageWidth, s.imageQuality)
	if err != nil {
		return err
	}

	p.Fotos.Set(tipo, uri)
	return nil
}

// Submit sends the protocolo to the backend. When offline, or when the
// create call fails, the record is handed to the offline buffer instead;
// the boolean result reports whether it was deferred. A deferred submission
// is not an error.
func (s *ProtocoloService) Submit(ctx context.Context, p models.Protocolo) (models.Protocolo, bool, error) {
	if p.Numero == "" {
		p.Numero = s.GerarNumero()
	}

	if !s.monitor.Online() {
		entry, err := s.buffer.SaveOffline(ctx, p)
		if err != nil {
			return models.Protocolo{}, false, err
		}
		return entry.Protocolo, true, nil
	}

	// photos first; failed uploads are dropped, they never block submission
	uploaded := s.fotos.UploadAll(ctx, p.Fotos, p.Numero)
	p.Fotos = uploaded

	created, err := s.remote.CreateProtocolo(ctx, p)
	if err != nil {
		s.log.Warn(ctx, "remote create failed, deferring protocolo", "numero", p.Numero, "error", err)
		entry, saveErr := s.buffer.SaveOffline(ctx, p)
		if saveErr != nil {
			return models.Protocolo{}, false, saveErr
		}
		return entry.Protocolo, true, nil
	}

	s.notifier.Notify(ctx, "Protocolo enviado", fmt.Sprintf("Protocolo %s registrado com sucesso", created.Numero))
	return created, false, nil
}

// SyncNow runs one reconciliation pass against the backend.
func (s *ProtocoloService) SyncNow(ctx context.Context) error {
	return s.buffer.SyncPending(ctx, s.monitor.Online(), func(ctx context.Context, p models.Protocolo) (models.Protocolo, error) {
		return s.remote.CreateProtocolo(ctx, p)
	})
}
