package persistence

import (
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/spec-kit/evaluacion-docente/internal/config"
)

// OpenBolt opens (or creates) the embedded mirror database.
func OpenBolt(cfg config.MirrorConfig, logger *zap.Logger) (*bbolt.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.BoltPath), 0o755); err != nil {
		return nil, err
	}
	db, err := bbolt.Open(cfg.BoltPath, 0o600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	logger.Info("opened bolt mirror", zap.String("path", cfg.BoltPath))
	return db, nil
}
