package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	galleryController "schoolsite_backend/internals/features/school/galleries/controller"
	galleryRepository "schoolsite_backend/internals/features/school/galleries/repository"
	galleryRoute "schoolsite_backend/internals/features/school/galleries/route"
	galleryService "schoolsite_backend/internals/features/school/galleries/service"
	noticeController "schoolsite_backend/internals/features/school/notices/controller"
	noticeRepository "schoolsite_backend/internals/features/school/notices/repository"
	noticeRoute "schoolsite_backend/internals/features/school/notices/route"
	noticeService "schoolsite_backend/internals/features/school/notices/service"
	routineController "schoolsite_backend/internals/features/school/routines/controller"
	routineRepository "schoolsite_backend/internals/features/school/routines/repository"
	routineRoute "schoolsite_backend/internals/features/school/routines/route"
	routineService "schoolsite_backend/internals/features/school/routines/service"
	teacherController "schoolsite_backend/internals/features/school/teachers/controller"
	teacherRepository "schoolsite_backend/internals/features/school/teachers/repository"
	teacherRoute "schoolsite_backend/internals/features/school/teachers/route"
	teacherService "schoolsite_backend/internals/features/school/teachers/service"

	"schoolsite_backend/internals/helpers/lifecycle"
	helperOSS "schoolsite_backend/internals/helpers/oss"
)

type SchoolDeps struct {
	DB            *gorm.DB
	Log           *zap.Logger
	Validator     *validator.Validate
	Blobs         helperOSS.BlobService
	Orphans       lifecycle.OrphanRecorder
	MaxUploadSize int64
}

// SchoolRoutes memasang teacher, notice, gallery dan routine.
// admin = /admin (sudah lewat sesi), api = /api (publik), requireSession untuk tulis routine di /api.
func SchoolRoutes(admin, api fiber.Router, requireSession fiber.Handler, d SchoolDeps) {
	teachers := teacherController.NewTeacherController(
		teacherService.NewTeacherService(teacherRepository.NewTeacherRepository(d.DB), d.Blobs, d.Orphans, d.Log),
		d.Validator, d.MaxUploadSize, d.Log.Named("teacher"),
	)
	teacherRoute.TeacherAdminRoutes(admin, teachers)
	teacherRoute.TeacherPublicRoutes(api, teachers)

	notices := noticeController.NewNoticeController(
		noticeService.NewNoticeService(noticeRepository.NewNoticeRepository(d.DB), d.Blobs, d.Orphans, d.Log),
		d.Validator, d.MaxUploadSize, d.Log.Named("notice"),
	)
	noticeRoute.NoticeAdminRoutes(admin, notices)
	noticeRoute.NoticePublicRoutes(api, notices)

	gallery := galleryController.NewGalleryController(
		galleryService.NewGalleryService(galleryRepository.NewGalleryRepository(d.DB), d.Blobs, d.Orphans, d.Log),
		d.Validator, d.MaxUploadSize, d.Log.Named("gallery"),
	)
	galleryRoute.GalleryAdminRoutes(admin, gallery)
	galleryRoute.GalleryPublicRoutes(api, gallery)

	routines := routineController.NewRoutineController(
		routineService.NewRoutineService(routineRepository.NewRoutineRepository(d.DB), d.Log),
		d.Log.Named("routine"),
	)
	routineRoute.RoutinePublicRoutes(api, routines)
	routineRoute.RoutineAdminRoutes(api, routines, requireSession)
}
