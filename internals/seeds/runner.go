package seeds

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolsite_backend/internals/seeds/admins"
)

// RunAllSeeds dipanggil dari main saat SEED_ADMINS_FILE diisi.
func RunAllSeeds(ctx context.Context, db *gorm.DB, adminsFile string, log *zap.Logger) {
	log = log.Named("seed")

	//* Admin awal
	if adminsFile != "" {
		n, err := admins.SeedAdminsFromJSON(ctx, db, adminsFile, log)
		if err != nil {
			log.Error("seed admins gagal", zap.Error(err))
			return
		}
		log.Info("seed admins selesai", zap.Int("created", n))
	}
}
