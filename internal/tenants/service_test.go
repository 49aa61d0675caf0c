package tenants

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/storepulse/storepulse-backend/internal/testdb"
	"github.com/storepulse/storepulse-backend/internal/users"
	"github.com/storepulse/storepulse-backend/pkg/config"
	"github.com/storepulse/storepulse-backend/pkg/db/models"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/security"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (g gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}

func newOnboardFixture(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn := testdb.Open(t)
	svc, err := NewService(NewRepository(conn), users.NewRepository(conn), gormTxRunner{db: conn}, config.PasswordConfig{})
	require.NoError(t, err)
	return svc, conn
}

func validInput() OnboardInput {
	return OnboardInput{
		Name:               "Acme Outfitters",
		ShopifyDomain:      "Acme.MyShopify.com",
		ShopifyAccessToken: "shpat_test",
		AdminEmail:         "Owner@Acme.com",
		AdminPassword:      "s3cret-pass",
		AdminFirstName:     "Ada",
		AdminLastName:      "Ng",
	}
}

func TestOnboardCreatesTenantAndAdmin(t *testing.T) {
	svc, conn := newOnboardFixture(t)

	result, err := svc.Onboard(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "Acme Outfitters", result.Tenant.Name)
	assert.Equal(t, "acme.myshopify.com", result.Tenant.ShopifyDomain)
	assert.True(t, result.Tenant.SyncEnabled)
	assert.Equal(t, "owner@acme.com", result.AdminUser.Email)
	assert.Equal(t, string(models.RoleAdmin), result.AdminUser.Role)
	assert.Equal(t, result.Tenant.ID, result.AdminUser.TenantID)

	var admin models.User
	require.NoError(t, conn.First(&admin, "email = ?", "owner@acme.com").Error)
	assert.NotEqual(t, "s3cret-pass", admin.PasswordHash)
	ok, err := security.VerifyPassword("s3cret-pass", admin.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOnboardWithoutAccessTokenDisablesSync(t *testing.T) {
	svc, _ := newOnboardFixture(t)

	input := validInput()
	input.ShopifyAccessToken = ""
	result, err := svc.Onboard(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, result.Tenant.SyncEnabled)
}

func TestOnboardDuplicateDomainConflicts(t *testing.T) {
	svc, conn := newOnboardFixture(t)

	_, err := svc.Onboard(context.Background(), validInput())
	require.NoError(t, err)

	second := validInput()
	second.AdminEmail = "other@acme.com"
	_, err = svc.Onboard(context.Background(), second)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
	assert.Equal(t, "a tenant already exists for this shop domain", typed.Message())

	var count int64
	require.NoError(t, conn.Model(&models.Tenant{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestOnboardDuplicateEmailRollsBackTenant(t *testing.T) {
	svc, conn := newOnboardFixture(t)

	_, err := svc.Onboard(context.Background(), validInput())
	require.NoError(t, err)

	second := validInput()
	second.ShopifyDomain = "other.myshopify.com"
	_, err = svc.Onboard(context.Background(), second)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
	assert.Equal(t, "a user already exists for this email", typed.Message())

	// the tenant insert from the failed registration must not survive
	var tenantCount int64
	require.NoError(t, conn.Model(&models.Tenant{}).Count(&tenantCount).Error)
	assert.EqualValues(t, 1, tenantCount)

	var userCount int64
	require.NoError(t, conn.Model(&models.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 1, userCount)
}

func TestOnboardValidatesInput(t *testing.T) {
	svc, _ := newOnboardFixture(t)

	input := validInput()
	input.ShopifyDomain = "   "
	_, err := svc.Onboard(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	input = validInput()
	input.AdminEmail = "not-an-email"
	_, err = svc.Onboard(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestGetByID(t *testing.T) {
	svc, _ := newOnboardFixture(t)

	created, err := svc.Onboard(context.Background(), validInput())
	require.NoError(t, err)

	found, err := svc.GetByID(context.Background(), created.Tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Tenant.ID, found.ID)

	_, err = svc.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
