package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"schoolsite_backend/internals/features/admins/signup/model"
	helper "schoolsite_backend/internals/helpers"
	"schoolsite_backend/internals/helpers/apperror"
	authHelper "schoolsite_backend/internals/helpers/auth"
	"schoolsite_backend/internals/helpers/notify"
	"schoolsite_backend/internals/helpers/repository"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type Repository interface {
	FindByUsername(ctx context.Context, username string) (*model.SignupRequestModel, error)
	Create(ctx context.Context, req *model.SignupRequestModel) error
	Decide(ctx context.Context, username, status string) (applied bool, current string, err error)
}

type AdminChecker interface {
	Exists(ctx context.Context, username string) (bool, error)
}

type SignupResult struct {
	Username string
	Status   string
	Notified bool
}

// Decision: Changed=false berarti request sudah final sebelumnya (idempotent).
type Decision struct {
	Username string
	Status   string
	Changed  bool
	Message  string
}

type SignupService struct {
	repo     Repository
	admins   AdminChecker
	sender   notify.Sender
	links    *authHelper.ActionLinkSigner
	baseURL  string
	operator string
	log      *zap.Logger
}

func NewSignupService(repo Repository, admins AdminChecker, sender notify.Sender, links *authHelper.ActionLinkSigner, baseURL, operator string, log *zap.Logger) *SignupService {
	return &SignupService{
		repo:     repo,
		admins:   admins,
		sender:   sender,
		links:    links,
		baseURL:  strings.TrimRight(baseURL, "/"),
		operator: operator,
		log:      log.Named("signup"),
	}
}

// RequestSignup menyimpan request pending lalu memberi tahu operator.
// Kalau notifikasi gagal request tetap tersimpan (Notified=false).
func (s *SignupService) RequestSignup(ctx context.Context, username, password string) (*SignupResult, error) {
	rid := helper.RequestID(ctx)
	username = strings.TrimSpace(username)

	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, apperror.MissingFields(missing...)
	}

	existing, err := s.repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return &SignupResult{Username: username, Status: existing.SignupRequestStatus},
			apperror.Duplicate("Your signup status is: " + existing.SignupRequestStatus)
	case !errors.Is(err, repository.ErrRecordNotFound):
		s.log.Error("signup#request lookup failed", zap.String("reqid", rid), zap.Error(err))
		return nil, apperror.Persistence("load", err)
	}

	exists, err := s.admins.Exists(ctx, username)
	if err != nil {
		s.log.Error("signup#request admin lookup failed", zap.String("reqid", rid), zap.Error(err))
		return nil, apperror.Persistence("load", err)
	}
	if exists {
		return nil, apperror.Duplicate("Username already exists")
	}

	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return nil, apperror.Validation("Password cannot be used")
	}

	req := &model.SignupRequestModel{
		SignupRequestUsername:     username,
		SignupRequestPasswordHash: hash,
		SignupRequestStatus:       model.StatusPending,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		if errors.Is(err, apperror.ErrDuplicate) {
			// kalah balapan dengan request lain untuk username yang sama
			return &SignupResult{Username: username, Status: model.StatusPending},
				apperror.Duplicate("Your signup status is: " + model.StatusPending)
		}
		s.log.Error("signup#request persist failed", zap.String("reqid", rid), zap.Error(err))
		return nil, apperror.Persistence("create", err)
	}

	result := &SignupResult{Username: username, Status: model.StatusPending, Notified: true}
	msg, err := s.notification(username)
	if err == nil {
		err = s.sender.Send(ctx, msg)
	}
	if err != nil {
		result.Notified = false
		s.log.Error("signup#notify failed", zap.String("reqid", rid), zap.String("username", username), zap.Error(err))
	}

	s.log.Info("signup#request", zap.String("reqid", rid), zap.String("username", username), zap.Bool("notified", result.Notified))
	return result, nil
}

func (s *SignupService) Approve(ctx context.Context, username string) (*Decision, error) {
	return s.decide(ctx, username, model.StatusAccepted)
}

func (s *SignupService) Reject(ctx context.Context, username string) (*Decision, error) {
	return s.decide(ctx, username, model.StatusRejected)
}

// CheckStatus → ErrNotFound kalau belum pernah request.
func (s *SignupService) CheckStatus(ctx context.Context, username string) (string, error) {
	req, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrRecordNotFound) {
		return "", apperror.NotFound("not_found")
	}
	if err != nil {
		return "", apperror.Persistence("load", err)
	}
	return req.SignupRequestStatus, nil
}

// VerifyLink memeriksa token link approve/reject; no-op kalau secret tidak diset.
func (s *SignupService) VerifyLink(username, action, token string) error {
	if err := s.links.Verify(token, username, action); err != nil {
		return apperror.Wrap(apperror.ErrUnauthenticated, "This link is invalid or has expired.", err)
	}
	return nil
}

func (s *SignupService) decide(ctx context.Context, username, target string) (*Decision, error) {
	rid := helper.RequestID(ctx)
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperror.MissingFields("username")
	}

	applied, current, err := s.repo.Decide(ctx, username, target)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return nil, apperror.NotFound("No pending request found.")
	case errors.Is(err, apperror.ErrDuplicate):
		s.log.Warn("signup#decide admin exists, request rejected", zap.String("reqid", rid), zap.String("username", username))
		return nil, err
	case err != nil:
		s.log.Error("signup#decide failed", zap.String("reqid", rid), zap.String("username", username), zap.Error(err))
		return nil, apperror.Persistence("update", err)
	}

	d := &Decision{Username: username, Status: current, Changed: applied}
	d.Message = decisionMessage(target, current, applied)
	s.log.Info("signup#decide",
		zap.String("reqid", rid),
		zap.String("username", username),
		zap.String("target", target),
		zap.String("status", current),
		zap.Bool("changed", applied))
	return d, nil
}

func decisionMessage(target, current string, applied bool) string {
	if applied {
		if target == model.StatusAccepted {
			return "Request approved."
		}
		return "Request rejected."
	}
	switch {
	case target == model.StatusAccepted && current == model.StatusAccepted:
		return "Already approved."
	case target == model.StatusAccepted:
		return "This request was rejected."
	case current == model.StatusRejected:
		return "Already rejected."
	default:
		return "This request was already approved."
	}
}

func (s *SignupService) actionLink(username, action string) (string, error) {
	q := url.Values{}
	q.Set("username", username)
	token, err := s.links.Sign(username, action)
	if err != nil {
		return "", err
	}
	if token != "" {
		q.Set("token", token)
	}
	return fmt.Sprintf("%s/api/admin/%s?%s", s.baseURL, action, q.Encode()), nil
}

func (s *SignupService) notification(username string) (notify.Message, error) {
	approve, err := s.actionLink(username, ActionApprove)
	if err != nil {
		return notify.Message{}, err
	}
	reject, err := s.actionLink(username, ActionReject)
	if err != nil {
		return notify.Message{}, err
	}

	body := fmt.Sprintf("New signup request\nUsername: %s\n\nApprove: %s\nReject: %s\n", username, approve, reject)
	htmlBody := fmt.Sprintf(`<h3>New Signup Request</h3>
<p><b>Username:</b> %s</p>
<p><a href="%s" style="color:green;">Approve</a> | <a href="%s" style="color:red;">Reject</a></p>`,
		html.EscapeString(username), html.EscapeString(approve), html.EscapeString(reject))

	return notify.Message{
		To:      s.operator,
		Subject: "New Signup Request",
		Body:    body,
		HTML:    htmlBody,
	}, nil
}
