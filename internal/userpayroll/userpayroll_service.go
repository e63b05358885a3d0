package userpayroll

import (
	"context"
	"net/http"

	"github.com/ProfileJass/Incapacities/internal/company"
	"github.com/ProfileJass/Incapacities/internal/payroll"
	"github.com/ProfileJass/Incapacities/internal/shared/apperror"
	"github.com/ProfileJass/Incapacities/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the upsert collaborator the create flow leans on: it
// stores the user, the company, and the payroll row linking them, with
// create-or-update semantics keyed by primary key.
//
//go:generate mockgen -source=userpayroll_service.go -destination=mock/userpayroll_service_mock.go -package=mock
type Service interface {
	UpsertUser(ctx context.Context, u *user.User) error
	UpsertCompanyAndPayroll(ctx context.Context, p *payroll.Payroll, userID uuid.UUID) error
}

type service struct {
	users     user.Repository
	companies company.Repository
	payrolls  payroll.Repository
	logger    *zap.Logger
}

func NewService(
	users user.Repository,
	companies company.Repository,
	payrolls payroll.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("userpayroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("userpayroll.service")
	}
	return &service{
		users:     users,
		companies: companies,
		payrolls:  payrolls,
		logger:    l,
	}
}

func (s *service) UpsertUser(ctx context.Context, u *user.User) error {
	if err := s.users.Upsert(ctx, u); err != nil {
		s.logger.Error("upsert user failed",
			zap.String("user_id", u.ID.String()),
			zap.Error(err),
		)
		return apperror.Wrap(err, apperror.CodeInternalError, "Failed to store user", http.StatusInternalServerError)
	}
	return nil
}

func (s *service) UpsertCompanyAndPayroll(ctx context.Context, p *payroll.Payroll, userID uuid.UUID) error {
	c := &company.Company{
		ID:            p.CompanyID,
		NameCompany:   p.NameCompany,
		NIT:           p.NIT,
		AdressCompany: p.AdressCompany,
		Phone:         p.Phone,
	}
	if err := s.companies.Upsert(ctx, c); err != nil {
		s.logger.Error("upsert company failed",
			zap.String("company_id", p.CompanyID.String()),
			zap.Error(err),
		)
		return apperror.Wrap(err, apperror.CodeInternalError, "Failed to store company and payroll", http.StatusInternalServerError)
	}

	rec := &payroll.Record{
		ID:        p.ID,
		UserID:    userID,
		CompanyID: p.CompanyID,
		Status:    payroll.StatusActive,
	}
	if err := s.payrolls.Upsert(ctx, rec); err != nil {
		s.logger.Error("upsert payroll failed",
			zap.String("payroll_id", p.ID.String()),
			zap.Error(err),
		)
		return apperror.Wrap(err, apperror.CodeInternalError, "Failed to store company and payroll", http.StatusInternalServerError)
	}

	return nil
}
