package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/logifrete/protocolos/internal/client/alerts"
	"github.com/logifrete/protocolos/internal/client/config"
	"github.com/logifrete/protocolos/internal/client/connectivity"
	"github.com/logifrete/protocolos/internal/client/kv"
	"github.com/logifrete/protocolos/internal/client/notify"
	"github.com/logifrete/protocolos/internal/client/offline"
	"github.com/logifrete/protocolos/internal/client/remote"
	"github.com/logifrete/protocolos/internal/client/services"
	"github.com/logifrete/protocolos/internal/fotostorage"
	"github.com/logifrete/protocolos/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the driver CLI together: local store, offline buffer,
// connectivity monitor, and the submission service.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	buffer   *offline.Buffer
	monitor  *connectivity.Monitor
	service  services.Service
	alerts   *alerts.DismissalStore
	notifier notify.Notifier
	reader   *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, db, err := kv.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing local store", "error", err)
		return nil, err
	}

	notifier := notify.NewLogNotifier(log)

	buffer := offline.NewBuffer(store, notifier, log)
	if err := buffer.Load(ctx); err != nil {
		db.Close()
		return nil, err
	}

	api := remote.NewClient(cfg.APIBaseURL, cfg.APIKey, log)
	monitor := connectivity.NewMonitor(api, cfg.OnlineCheckInterval, log)

	uploader := fotostorage.NewUploader(fotostorage.Config{
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
	}, log)

	svc := services.NewProtocoloService(api, uploader, buffer, monitor, notifier, log,
		cfg.MaxImageWidth, cfg.ImageQuality)

	app := &App{
		config:   cfg,
		log:      log,
		db:       db,
		buffer:   buffer,
		monitor:  monitor,
		service:  svc,
		alerts:   alerts.NewDismissalStore(store),
		notifier: notifier,
		reader:   bufio.NewReader(os.Stdin),
	}
	app.wireConnectivity(ctx)

	return app, nil
}

// wireConnectivity registers the transition side effects: user notification
// plus a reconciliation pass on every reconnect.
func (a *App) wireConnectivity(ctx context.Context) {
	a.monitor.Subscribe(func(online bool) {
		if online {
			a.notifier.Notify(ctx, "Conexão restaurada", "Sincronizando protocolos pendentes...")
			if err := a.service.SyncNow(ctx); err != nil {
				a.log.Error(ctx, "sync after reconnect failed", "error", err)
			}
			return
		}
		a.notifier.Warn(ctx, "Sem conexão", "Os protocolos serão salvos localmente")
	})
}

// Run starts the reachability watcher and enters the REPL. It returns when
// the user exits or ctx is canceled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.monitor.Run(ctx)

	a.Main(ctx)
}

func (a *App) Close() error {
	return a.db.Close()
}
