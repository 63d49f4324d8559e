package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/spec-kit/evaluacion-docente/internal/auth"
	"github.com/spec-kit/evaluacion-docente/internal/config"
	"github.com/spec-kit/evaluacion-docente/internal/observability"
	"github.com/spec-kit/evaluacion-docente/internal/persistence"
)

// hashpasswords rewrites the bootstrap file with bcrypt hashes in place of plain
// passwords. Values that are already hashed are left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	path := flag.String("file", cfg.Survey.DataFile, "bootstrap data file to rewrite")
	flag.Parse()

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	snap, err := persistence.LoadSnapshot(*path)
	if err != nil {
		logger.Fatal("failed to read data file", zap.String("file", *path), zap.Error(err))
	}

	hashed, err := hashSnapshot(snap, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash passwords", zap.Error(err))
	}
	if err := persistence.WriteSnapshot(*path, snap); err != nil {
		logger.Fatal("failed to write data file", zap.String("file", *path), zap.Error(err))
	}
	logger.Info("passwords hashed", zap.String("file", *path), zap.Int("hashed", hashed))
}

func hashSnapshot(snap *persistence.Snapshot, cost int) (int, error) {
	count := 0
	hash := func(p *string) error {
		if *p == "" || auth.IsHashed(*p) {
			return nil
		}
		h, err := auth.HashPassword(*p, cost)
		if err != nil {
			return err
		}
		*p = h
		count++
		return nil
	}

	for i := range snap.Students {
		if err := hash(&snap.Students[i].Password); err != nil {
			return count, err
		}
	}
	for i := range snap.Professors {
		if err := hash(&snap.Professors[i].Password); err != nil {
			return count, err
		}
	}
	for i := range snap.Admins {
		if err := hash(&snap.Admins[i].Password); err != nil {
			return count, err
		}
	}
	return count, nil
}
