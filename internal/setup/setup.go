// Package setup wires external dependencies from the loaded config.
package setup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cooksapp/cooks/internal/blobstore"
	"github.com/cooksapp/cooks/internal/config"
	"github.com/cooksapp/cooks/internal/database"
	"github.com/cooksapp/cooks/internal/email"
	"github.com/cooksapp/cooks/internal/httpx"
)

// Database connects to postgres and applies the schema on first run.
func Database(ctx context.Context, conf config.Database) (*database.Database, error) {
	pool, err := pgxpool.New(ctx, conf.URL())
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := database.EnsureSchema(ctx, db, pool); err != nil {
		return nil, err
	}
	return db, nil
}

// Notifier picks the configured delivery mechanism. A webhook URL wins over
// SMTP; with neither set the notifier is nil and sends are skipped.
func Notifier(conf *config.Config, logger *slog.Logger) email.Notifier {
	if conf.Webhook.URL != "" {
		logger.Info("using webhook notifier", "url", conf.Webhook.URL)
		return email.NewWebhookSender(conf.Webhook.URL, httpx.New(httpx.DefaultConfig()))
	}
	if conf.SMTP.Enabled() {
		logger.Info("using smtp notifier", "host", conf.SMTP.Host)
		return email.NewSMTPSender(email.Config{
			Host:     conf.SMTP.Host,
			Port:     conf.SMTP.Port,
			Username: conf.SMTP.Username,
			Password: conf.SMTP.Password,
			From:     conf.SMTP.From,
		})
	}
	logger.Warn("no notifier configured, verification emails will be skipped")
	return nil
}

// BlobStore connects to the image store when one is configured.
func BlobStore(ctx context.Context, conf config.BlobStore, logger *slog.Logger) (blobstore.Store, error) {
	if !conf.Enabled() {
		logger.Warn("no blob store configured, image uploads will be skipped")
		return nil, nil
	}

	store, err := blobstore.New(blobstore.Config{
		Endpoint:  conf.Endpoint,
		AccessKey: conf.AccessKey,
		SecretKey: conf.SecretKey,
		Bucket:    conf.Bucket,
		PublicURL: conf.PublicURL,
		UseSSL:    conf.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	if err := store.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
