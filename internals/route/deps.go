package routes

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolsite_backend/internals/configs"
	authService "schoolsite_backend/internals/features/admins/auth/service"
	authHelper "schoolsite_backend/internals/helpers/auth"
	"schoolsite_backend/internals/helpers/lifecycle"
	"schoolsite_backend/internals/helpers/notify"
	helperOSS "schoolsite_backend/internals/helpers/oss"
)

// Deps adalah infrastruktur bersama yang dirakit di main lalu dibagikan ke semua route.
type Deps struct {
	Config    *configs.Config
	DB        *gorm.DB
	Log       *zap.Logger
	Validator *validator.Validate

	Sessions *authService.SessionAuthority
	Cookie   *authHelper.CookieCodec
	Links    *authHelper.ActionLinkSigner
	Notifier notify.Sender

	Blobs   helperOSS.BlobService
	Orphans lifecycle.OrphanRecorder

	// Ping dipakai /health; nil → dianggap sehat.
	Ping func(ctx context.Context) error
}
