package tenants

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storepulse/storepulse-backend/internal/users"
	"github.com/storepulse/storepulse-backend/pkg/config"
	"github.com/storepulse/storepulse-backend/pkg/db"
	"github.com/storepulse/storepulse-backend/pkg/db/models"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/security"
)

type tenantRepository interface {
	CreateWithTx(tx *gorm.DB, dto CreateTenantDTO) (*models.Tenant, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	FindByDomain(ctx context.Context, domain string) (*models.Tenant, error)
}

type usersRepository interface {
	CreateWithTx(tx *gorm.DB, dto users.CreateUserDTO) (*models.User, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// OnboardInput captures the data required to register a tenant and its admin.
type OnboardInput struct {
	Name               string
	ShopifyDomain      string
	ShopifyAPIKey      string
	ShopifyAPISecret   string
	ShopifyAccessToken string
	AdminEmail         string
	AdminPassword      string
	AdminFirstName     string
	AdminLastName      string
}

// Service exposes tenant operations.
type Service interface {
	Onboard(ctx context.Context, input OnboardInput) (*OnboardResultDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TenantDTO, error)
}

type service struct {
	repo        tenantRepository
	users       usersRepository
	tx          txRunner
	passwordCfg config.PasswordConfig
}

// NewService builds a tenant service with the provided repositories.
func NewService(repo tenantRepository, usersRepo usersRepository, tx txRunner, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("tenant repository required")
	}
	if usersRepo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:        repo,
		users:       usersRepo,
		tx:          tx,
		passwordCfg: passwordCfg,
	}, nil
}

// Onboard registers a tenant and its admin user in a single transaction.
// A duplicate shop domain or admin email rolls the whole registration back.
func (s *service) Onboard(ctx context.Context, input OnboardInput) (*OnboardResultDTO, error) {
	domain := normalizeDomain(input.ShopifyDomain)
	email := strings.ToLower(strings.TrimSpace(input.AdminEmail))

	if domain == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shopify domain is required")
	}
	if !strings.Contains(email, "@") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid admin email")
	}

	hash, err := security.HashPassword(input.AdminPassword, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	var (
		tenant *models.Tenant
		admin  *models.User
	)

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		var accessToken *string
		if token := strings.TrimSpace(input.ShopifyAccessToken); token != "" {
			accessToken = &token
		}

		tenant, err = s.repo.CreateWithTx(tx, CreateTenantDTO{
			Name:               strings.TrimSpace(input.Name),
			ShopifyDomain:      domain,
			ShopifyAPIKey:      strings.TrimSpace(input.ShopifyAPIKey),
			ShopifyAPISecret:   strings.TrimSpace(input.ShopifyAPISecret),
			ShopifyAccessToken: accessToken,
		})
		if err != nil {
			return err
		}

		admin, err = s.users.CreateWithTx(tx, users.CreateUserDTO{
			Email:        email,
			FirstName:    strings.TrimSpace(input.AdminFirstName),
			LastName:     strings.TrimSpace(input.AdminLastName),
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			TenantID:     tenant.ID,
		})
		return err
	})
	if err != nil {
		if db.IsUniqueViolation(err, "tenants_shopify_domain_idx") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "a tenant already exists for this shop domain")
		}
		if db.IsUniqueViolation(err, "users_email_idx") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "a user already exists for this email")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "onboarding tenant")
	}

	return &OnboardResultDTO{
		Tenant:    *FromModel(tenant),
		AdminUser: adminFromModel(admin),
	}, nil
}

// GetByID returns the tenant DTO for the provided id.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*TenantDTO, error) {
	tenant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "tenant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading tenant")
	}
	return FromModel(tenant), nil
}

func normalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}
