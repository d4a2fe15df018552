package admins

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolsite_backend/internals/features/admins/auth/model"
	authHelper "schoolsite_backend/internals/helpers/auth"
)

type AdminSeed struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ParseAdminSeeds membaca array JSON; entri tanpa username/password dibuang.
func ParseAdminSeeds(raw []byte) ([]AdminSeed, error) {
	var inputs []AdminSeed
	if err := sonic.Unmarshal(raw, &inputs); err != nil {
		return nil, err
	}
	out := make([]AdminSeed, 0, len(inputs))
	for _, in := range inputs {
		in.Username = strings.TrimSpace(in.Username)
		if in.Username == "" || in.Password == "" {
			continue
		}
		out = append(out, in)
	}
	return out, nil
}

// SeedAdminsFromJSON membuat admin awal. Username yang sudah ada dilewati, password tidak ditimpa.
func SeedAdminsFromJSON(ctx context.Context, db *gorm.DB, filePath string, log *zap.Logger) (int, error) {
	log.Info("📥 membaca file admin", zap.String("file", filePath))

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return 0, err
	}
	seeds, err := ParseAdminSeeds(raw)
	if err != nil {
		return 0, err
	}
	if len(seeds) == 0 {
		return 0, errors.New("no valid admin entries")
	}

	created := 0
	for _, s := range seeds {
		hash, err := authHelper.HashPassword(s.Password)
		if err != nil {
			log.Warn("❌ gagal hash password", zap.String("username", s.Username), zap.Error(err))
			continue
		}
		res := db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "admin_username"}}, DoNothing: true}).
			Create(&model.AdminModel{AdminUsername: s.Username, AdminPasswordHash: hash})
		if res.Error != nil {
			log.Warn("❌ gagal insert admin", zap.String("username", s.Username), zap.Error(res.Error))
			continue
		}
		if res.RowsAffected == 0 {
			log.Info("ℹ️ admin sudah ada, dilewati", zap.String("username", s.Username))
			continue
		}
		created++
		log.Info("✅ admin dibuat", zap.String("username", s.Username))
	}
	return created, nil
}
