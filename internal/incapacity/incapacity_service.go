package incapacity

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ProfileJass/Incapacities/internal/events"
	incapacityerrors "github.com/ProfileJass/Incapacities/internal/incapacity/errors"
	"github.com/ProfileJass/Incapacities/internal/messaging/kafka"
	"github.com/ProfileJass/Incapacities/internal/payroll"
	"github.com/ProfileJass/Incapacities/internal/shared/apperror"
	"github.com/ProfileJass/Incapacities/internal/shared/contextutil"
	"github.com/ProfileJass/Incapacities/internal/shared/counter"
	"github.com/ProfileJass/Incapacities/internal/user"
	"github.com/ProfileJass/Incapacities/internal/userpayroll"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	listCacheKey = "incapacities:all"
	listCacheTTL = 60 * time.Second

	filingCounterType = "incapacity"
)

//go:generate mockgen -source=incapacity_service.go -destination=mock/incapacity_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateIncapacityRequest) (IncapacityResponse, error)
	GetAll(ctx context.Context) ([]IncapacityResponse, error)
	GetByUser(ctx context.Context, userID string) ([]IncapacityResponse, error)
	Update(ctx context.Context, id string, req UpdateIncapacityRequest) (IncapacityResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	registry userpayroll.Service
	filings  counter.Repository
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, registry userpayroll.Service, filings counter.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, registry, filings, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	registry userpayroll.Service,
	filings counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("incapacity.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("incapacity.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		registry: registry,
		filings:  filings,
		outbox:   outboxRepo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateIncapacityRequest) (IncapacityResponse, error) {
	s.logger.Debug("create incapacity requested",
		zap.String("email", req.User.Email),
		zap.String("nit", req.Payroll.NIT),
		zap.String("type", req.Incapacity.Type),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create incapacity begin tx failed", zap.Error(err))
		return IncapacityResponse{}, wrapCreate(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Fresh identities on every filing: the upserts below always
	// insert in practice.
	userID := uuid.New()
	u, err := user.New(userID, req.User.FirstName, req.User.LastName, req.User.Email, req.User.Role)
	if err != nil {
		s.logger.Warn("create incapacity user validation failed", zap.Error(err))
		return IncapacityResponse{}, err
	}

	companyID := uuid.New()
	payrollID := uuid.New()
	p, err := payroll.New(payrollID, companyID, req.Payroll.NameCompany, req.Payroll.NIT, req.Payroll.AdressCompany, req.Payroll.Phone)
	if err != nil {
		s.logger.Warn("create incapacity payroll validation failed", zap.Error(err))
		return IncapacityResponse{}, err
	}

	// No ordering check at creation time: an inverted range is stored
	// as filed and reviewed downstream.
	startDate, err := parseDate(req.Incapacity.StartDate, incapacityerrors.ErrInvalidStartDate)
	if err != nil {
		return IncapacityResponse{}, err
	}
	endDate, err := parseDate(req.Incapacity.EndDate, incapacityerrors.ErrInvalidEndDate)
	if err != nil {
		return IncapacityResponse{}, err
	}

	if !IsValidType(req.Incapacity.Type) {
		return IncapacityResponse{}, incapacityerrors.ErrInvalidType
	}

	if err := s.registry.UpsertUser(ctx, u); err != nil {
		return IncapacityResponse{}, wrapCreate(err)
	}
	if err := s.registry.UpsertCompanyAndPayroll(ctx, p, userID); err != nil {
		return IncapacityResponse{}, wrapCreate(err)
	}

	inc := NewIncapacity(
		uuid.New(),
		userID,
		payrollID,
		&startDate,
		&endDate,
		req.Incapacity.Type,
		StatusPendiente,
		req.Incapacity.Observacion,
	)

	if s.filings != nil {
		n, err := s.filings.NextValue(ctx, p.NIT, filingCounterType)
		if err != nil {
			s.logger.Error("create incapacity filing number failed", zap.Error(err))
			return IncapacityResponse{}, wrapCreate(err)
		}
		inc.FilingNumber = n
	}

	if err := qtx.Create(ctx, inc); err != nil {
		s.logger.Error("create incapacity persist failed", zap.Error(err))
		return IncapacityResponse{}, wrapCreate(err)
	}

	if err := s.appendCreatedEvent(ctx, tx, inc); err != nil {
		s.logger.Error("create incapacity outbox append failed", zap.Error(err))
		return IncapacityResponse{}, wrapCreate(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create incapacity commit failed", zap.Error(err))
		return IncapacityResponse{}, wrapCreate(err)
	}

	s.invalidateListCache(ctx)
	s.logger.Info("create incapacity success",
		zap.String("incapacity_id", inc.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int64("filing_number", inc.FilingNumber),
	)

	return mapToResponse(*inc), nil
}

func (s *service) GetAll(ctx context.Context) ([]IncapacityResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, listCacheKey).Result(); err == nil {
			var resp []IncapacityResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Collapse a stampede of list requests into one query.
	v, err, _ := s.sf.Do(listCacheKey, func() (interface{}, error) {
		incs, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.CodeInternalError, "Failed to retrieve incapacities", http.StatusInternalServerError)
		}

		resp := mapToListResponse(incs)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, listCacheKey, jsonData, listCacheTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]IncapacityResponse), nil
}

func (s *service) GetByUser(ctx context.Context, userID string) ([]IncapacityResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, incapacityerrors.ErrUserIDRequired
	}

	incs, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("find incapacities by user failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "Failed to retrieve user incapacities", http.StatusInternalServerError)
	}

	return mapToListResponse(incs), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateIncapacityRequest) (IncapacityResponse, error) {
	s.logger.Debug("update incapacity requested", zap.String("incapacity_id", id))

	if strings.TrimSpace(id) == "" {
		return IncapacityResponse{}, incapacityerrors.ErrIncapacityIDRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update incapacity begin tx failed", zap.Error(err))
		return IncapacityResponse{}, wrapUpdate(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return IncapacityResponse{}, incapacityerrors.ErrIncapacityNotFound
		}
		s.logger.Error("update incapacity lookup failed", zap.Error(err))
		return IncapacityResponse{}, wrapUpdate(err)
	}

	fields := map[string]any{}
	var newStart, newEnd *time.Time

	if present(req.StartDate) {
		t, err := parseDate(*req.StartDate, incapacityerrors.ErrInvalidStartDate)
		if err != nil {
			return IncapacityResponse{}, err
		}
		newStart = &t
		fields["start_date"] = t
	}
	if present(req.EndDate) {
		t, err := parseDate(*req.EndDate, incapacityerrors.ErrInvalidEndDate)
		if err != nil {
			return IncapacityResponse{}, err
		}
		newEnd = &t
		fields["end_date"] = t
	}
	if present(req.Type) {
		if !IsValidType(*req.Type) {
			return IncapacityResponse{}, incapacityerrors.ErrInvalidType
		}
		fields["type"] = *req.Type
	}
	if present(req.Status) {
		if !IsValidStatus(*req.Status) {
			return IncapacityResponse{}, incapacityerrors.ErrInvalidStatus
		}
		fields["status"] = *req.Status
	}
	if req.Observacion != nil {
		fields["observacion"] = *req.Observacion
	}

	// Range consistency, first matching branch only: both new dates
	// check against each other; a lone new date checks against its
	// stored partner; no partner, no check. Equal dates are fine.
	switch {
	case newStart != nil && newEnd != nil:
		if newEnd.Before(*newStart) {
			return IncapacityResponse{}, incapacityerrors.ErrInvalidDateRange
		}
	case newStart != nil && existing.EndDate != nil:
		if existing.EndDate.Before(*newStart) {
			return IncapacityResponse{}, incapacityerrors.ErrInvalidDateRange
		}
	case newEnd != nil && existing.StartDate != nil:
		if newEnd.Before(*existing.StartDate) {
			return IncapacityResponse{}, incapacityerrors.ErrInvalidDateRange
		}
	}

	fields["updated_at"] = time.Now().UTC()

	updated, err := qtx.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Deleted between the lookup and the write.
			return IncapacityResponse{}, incapacityerrors.ErrUpdateFailed
		}
		s.logger.Error("update incapacity persist failed",
			zap.String("incapacity_id", id),
			zap.Error(err),
		)
		return IncapacityResponse{}, wrapUpdate(err)
	}

	if updated.Status != existing.Status {
		if err := s.appendStatusChangedEvent(ctx, tx, existing.Status, updated); err != nil {
			s.logger.Error("update incapacity outbox append failed", zap.Error(err))
			return IncapacityResponse{}, wrapUpdate(err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update incapacity commit failed", zap.Error(err))
		return IncapacityResponse{}, wrapUpdate(err)
	}

	s.invalidateListCache(ctx)
	s.logger.Info("update incapacity success",
		zap.String("incapacity_id", id),
		zap.String("status", updated.Status),
	)

	return mapToResponse(*updated), nil
}

func (s *service) appendCreatedEvent(ctx context.Context, tx *sql.Tx, inc *Incapacity) error {
	if s.outbox == nil {
		return nil
	}

	event := events.IncapacityCreatedEvent{
		EventType:    events.EventTypeIncapacityCreated,
		IncapacityID: inc.ID.String(),
		UserID:       inc.UserID.String(),
		PayrollID:    inc.PayrollID.String(),
		Type:         inc.Type,
		Status:       inc.Status,
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "incapacity",
		AggregateID:   inc.ID.String(),
		EventType:     events.EventTypeIncapacityCreated,
		Topic:         events.IncapacityLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) appendStatusChangedEvent(ctx context.Context, tx *sql.Tx, oldStatus string, inc *Incapacity) error {
	if s.outbox == nil {
		return nil
	}

	event := events.IncapacityStatusChangedEvent{
		EventType:    events.EventTypeIncapacityStatusChanged,
		IncapacityID: inc.ID.String(),
		OldStatus:    oldStatus,
		NewStatus:    inc.Status,
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "incapacity",
		AggregateID:   inc.ID.String(),
		EventType:     events.EventTypeIncapacityStatusChanged,
		Topic:         events.IncapacityLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb != nil {
		s.rdb.Del(ctx, listCacheKey)
	}
}

// present treats a nil pointer and an empty string both as "field not
// supplied"; observacion is the one field handled differently.
func present(v *string) bool {
	return v != nil && *v != ""
}

// parseDate accepts plain dates first and full RFC 3339 timestamps as
// a fallback.
func parseDate(v string, invalid error) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Time{}, invalid
}

// wrapCreate/wrapUpdate prefix infrastructure failures with the owning
// operation; validation errors keep their own message and status.
func wrapCreate(err error) error {
	return wrapOperation(err, "Failed to create incapacity")
}

func wrapUpdate(err error) error {
	return wrapOperation(err, "Failed to update incapacity")
}

func wrapOperation(err error, message string) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError {
		return err
	}
	return apperror.Wrap(err, apperror.CodeInternalError, message, http.StatusInternalServerError)
}

func fmtDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format("2006-01-02")
	return &v
}

func mapToResponse(inc Incapacity) IncapacityResponse {
	return IncapacityResponse{
		ID:           inc.ID.String(),
		UserID:       inc.UserID.String(),
		PayrollID:    inc.PayrollID.String(),
		FilingNumber: inc.FilingNumber,
		StartDate:    fmtDate(inc.StartDate),
		EndDate:      fmtDate(inc.EndDate),
		Type:         inc.Type,
		Status:       inc.Status,
		Observacion:  inc.Observacion,
	}
}

func mapToListResponse(incs []Incapacity) []IncapacityResponse {
	resp := make([]IncapacityResponse, len(incs))
	for i, inc := range incs {
		resp[i] = mapToResponse(inc)
	}
	return resp
}
