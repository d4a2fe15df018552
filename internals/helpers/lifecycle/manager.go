package lifecycle

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	helper "schoolsite_backend/internals/helpers"
	"schoolsite_backend/internals/helpers/apperror"
	helperOSS "schoolsite_backend/internals/helpers/oss"
	"schoolsite_backend/internals/helpers/repository"
)

// Record adalah kontrak minimal model yang punya satu lampiran di object storage.
type Record interface {
	RecordID() uuid.UUID
	AttachmentURL() string
	SetAttachmentURL(url string)
	// MissingFields mengembalikan nama field wajib yang kosong.
	MissingFields() []string
}

type Repository[M any] interface {
	Create(ctx context.Context, m *M) error
	FindByID(ctx context.Context, id uuid.UUID) (*M, error)
	Update(ctx context.Context, m *M) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]M, error)
}

// Kind mendeskripsikan satu jenis resource (teacher, notice, gallery).
type Kind struct {
	Name               string // nama untuk log, mis. "teacher"
	Label              string // nama untuk pesan user, mis. "Teacher"
	Dir                string // sub-direktori di storage
	AttachmentField    string // nama field multipart
	AttachmentRequired bool
	Image              bool // recompress ke webp
}

// Manager mengatur urutan storage ↔ record:
//   - create: upload dulu, baru simpan record
//   - update: upload baru, simpan record, lalu hapus object lama
//   - delete: hapus object (best-effort), baru hapus record
//
// Object yang gagal dibersihkan dicatat ke OrphanRecorder.
type Manager[M any, PM interface {
	*M
	Record
}] struct {
	kind    Kind
	repo    Repository[M]
	blobs   helperOSS.BlobService
	orphans OrphanRecorder
	log     *zap.Logger
}

func NewManager[M any, PM interface {
	*M
	Record
}](kind Kind, repo Repository[M], blobs helperOSS.BlobService, orphans OrphanRecorder, log *zap.Logger) *Manager[M, PM] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager[M, PM]{
		kind:    kind,
		repo:    repo,
		blobs:   blobs,
		orphans: orphans,
		log:     log.Named(kind.Name),
	}
}

// CheckRequired: field wajib + lampiran wajib. Tanpa efek samping.
func (m *Manager[M, PM]) CheckRequired(rec *M, hasAttachment bool) error {
	missing := PM(rec).MissingFields()
	if m.kind.AttachmentRequired && !hasAttachment {
		missing = append(missing, m.kind.AttachmentField)
	}
	if len(missing) > 0 {
		return apperror.MissingFields(missing...)
	}
	return nil
}

func (m *Manager[M, PM]) Create(ctx context.Context, rec *M, file *helperOSS.FilePart) (*M, error) {
	if err := m.CheckRequired(rec, file != nil); err != nil {
		return nil, err
	}

	url, err := m.upload(ctx, file)
	if err != nil {
		return nil, err
	}
	PM(rec).SetAttachmentURL(url)

	if err := m.repo.Create(ctx, rec); err != nil {
		m.log.Error(m.kind.Name+"#create persist failed",
			zap.String("reqid", helper.RequestID(ctx)), zap.String("url", url), zap.Error(err))
		if url != "" {
			m.removeObject(ctx, url, uuid.Nil, "create: record insert failed")
		}
		if apperror.IsUniqueViolation(err) {
			return nil, apperror.Duplicate(m.kind.Label + " already exists")
		}
		return nil, apperror.Persistence("create", err)
	}

	m.log.Info(m.kind.Name+"#create ok",
		zap.String("reqid", helper.RequestID(ctx)), zap.Stringer("id", PM(rec).RecordID()))
	return rec, nil
}

// Update menerapkan apply ke record lama; file opsional menggantikan lampiran.
func (m *Manager[M, PM]) Update(ctx context.Context, id uuid.UUID, apply func(*M), file *helperOSS.FilePart) (*M, error) {
	cur, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	oldURL := PM(cur).AttachmentURL()

	if apply != nil {
		apply(cur)
	}
	missing := PM(cur).MissingFields()
	if m.kind.AttachmentRequired && file == nil && oldURL == "" {
		missing = append(missing, m.kind.AttachmentField)
	}
	if len(missing) > 0 {
		return nil, apperror.MissingFields(missing...)
	}

	newURL := ""
	if file != nil {
		if newURL, err = m.upload(ctx, file); err != nil {
			return nil, err
		}
		PM(cur).SetAttachmentURL(newURL)
	}

	if err := m.repo.Update(ctx, cur); err != nil {
		m.log.Error(m.kind.Name+"#update persist failed",
			zap.String("reqid", helper.RequestID(ctx)), zap.Stringer("id", id), zap.Error(err))
		if newURL != "" {
			m.removeObject(ctx, newURL, id, "update: record save failed")
		}
		if apperror.IsUniqueViolation(err) {
			return nil, apperror.Duplicate(m.kind.Label + " already exists")
		}
		return nil, apperror.Persistence("update", err)
	}

	if newURL != "" && oldURL != "" && oldURL != newURL {
		m.removeObject(ctx, oldURL, id, "update: replaced attachment")
	}
	return cur, nil
}

func (m *Manager[M, PM]) Delete(ctx context.Context, id uuid.UUID) error {
	cur, err := m.Get(ctx, id)
	if err != nil {
		return err
	}

	if url := PM(cur).AttachmentURL(); url != "" {
		m.removeObject(ctx, url, id, "delete: object delete failed")
	}

	if err := m.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return apperror.NotFound(m.kind.Label + " not found")
		}
		m.log.Error(m.kind.Name+"#delete persist failed",
			zap.String("reqid", helper.RequestID(ctx)), zap.Stringer("id", id), zap.Error(err))
		return apperror.Persistence("delete", err)
	}
	m.log.Info(m.kind.Name+"#delete ok", zap.String("reqid", helper.RequestID(ctx)), zap.Stringer("id", id))
	return nil
}

func (m *Manager[M, PM]) Get(ctx context.Context, id uuid.UUID) (*M, error) {
	rec, err := m.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, apperror.NotFound(m.kind.Label + " not found")
	}
	if err != nil {
		return nil, apperror.Persistence("load", err)
	}
	return rec, nil
}

func (m *Manager[M, PM]) List(ctx context.Context) ([]M, error) {
	items, err := m.repo.List(ctx)
	if err != nil {
		m.log.Error(m.kind.Name+"#list failed", zap.String("reqid", helper.RequestID(ctx)), zap.Error(err))
		return nil, apperror.Persistence("list", err)
	}
	return items, nil
}

func (m *Manager[M, PM]) upload(ctx context.Context, file *helperOSS.FilePart) (string, error) {
	if file == nil {
		return "", nil
	}
	var (
		url string
		err error
	)
	if m.kind.Image {
		url, err = m.blobs.UploadImage(ctx, m.kind.Dir, file)
	} else {
		url, err = m.blobs.UploadRaw(ctx, m.kind.Dir, file)
	}
	switch {
	case err == nil:
		return url, nil
	case errors.Is(err, helperOSS.ErrUnsupportedImage):
		return "", apperror.Validation("Unsupported image format (use jpg/png/webp)")
	case errors.Is(err, helperOSS.ErrFileTooLarge):
		return "", apperror.Validation("File is too large")
	case errors.Is(err, helperOSS.ErrEmptyFile):
		return "", apperror.MissingFields(m.kind.AttachmentField)
	}
	m.log.Error(m.kind.Name+"#upload failed",
		zap.String("reqid", helper.RequestID(ctx)), zap.String("filename", file.Filename), zap.Error(err))
	return "", apperror.Storage("upload", err)
}

// removeObject menghapus object secara best-effort; gagal → log + catat orphan.
func (m *Manager[M, PM]) removeObject(ctx context.Context, url string, id uuid.UUID, reason string) {
	err := m.blobs.DeleteByPublicURL(ctx, url)
	if err == nil {
		return
	}
	rid := helper.RequestID(ctx)
	m.log.Warn(m.kind.Name+"#cleanup object left behind",
		zap.String("reqid", rid), zap.String("url", url), zap.String("reason", reason), zap.Error(err))

	if m.orphans == nil {
		return
	}
	o := &OrphanedObjectModel{
		OrphanedObjectURL:       url,
		OrphanedObjectReason:    reason,
		OrphanedObjectLastError: err.Error(),
		OrphanedObjectContext: map[string]any{
			"kind":  m.kind.Name,
			"reqid": rid,
		},
	}
	if id != uuid.Nil {
		o.OrphanedObjectContext["record_id"] = id.String()
	}
	// context request bisa sudah habis; ledger tetap harus tercatat
	if rerr := m.orphans.RecordOrphan(context.WithoutCancel(ctx), o); rerr != nil {
		m.log.Error(m.kind.Name+"#cleanup orphan ledger write failed",
			zap.String("reqid", rid), zap.String("url", url), zap.Error(rerr))
	}
}
