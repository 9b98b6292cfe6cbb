package repository

import (
	"context"
	"errors"
	"time"

	"github.com/vestalumina/vls-api/internal/domain"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// TenantMutation is applied to a tenant row while it is locked for update.
// Returning an error aborts the write.
type TenantMutation func(tenant *domain.Tenant) error

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	// CreateIfAbsent inserts the tenant and its settings in one transaction,
	// returning ErrDuplicateKey when the tenant id is already taken.
	CreateIfAbsent(ctx context.Context, tenant *domain.Tenant, settings *domain.TenantSettings) error
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	Mutate(ctx context.Context, id string, fn TenantMutation) (*domain.Tenant, error)
	// Delete removes the tenant and its settings.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.TenantFilter) ([]domain.Tenant, error)
	ListMissingIdentity(ctx context.Context) ([]domain.Tenant, error)
}

//go:generate mockery --name AdminRepository --output ../mocks
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminPrincipal, error)
	Upsert(ctx context.Context, principal *domain.AdminPrincipal) error
	Delete(ctx context.Context, email string) error
	List(ctx context.Context, filter domain.AdminPrincipalFilter) ([]domain.AdminPrincipal, error)
}

//go:generate mockery --name BrandRepository --output ../mocks
type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, id string) (*domain.Brand, error)
	List(ctx context.Context, brandID string) ([]domain.Brand, error)
	ComputeStats(ctx context.Context, id string) (*domain.BrandStats, error)
	UpdateStats(ctx context.Context, id string, stats *domain.BrandStats, at time.Time) error
}

//go:generate mockery --name UnitRepository --output ../mocks
type UnitRepository interface {
	Create(ctx context.Context, unit *domain.Unit) error
	GetByID(ctx context.Context, id string) (*domain.Unit, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Unit, error)
}

// DeviceMutation is applied to the active device of a unit while it is locked.
type DeviceMutation func(device *domain.Device) error

//go:generate mockery --name DeviceRepository --output ../mocks
type DeviceRepository interface {
	// ReplaceActive marks every active device of the unit replaced and stores
	// device as the new active one, atomically. It returns how many devices
	// were replaced.
	ReplaceActive(ctx context.Context, device *domain.Device) (int64, error)
	MutateActive(ctx context.Context, unitID string, fn DeviceMutation) (*domain.Device, error)
	ListActiveIDs(ctx context.Context) ([]string, error)
	SetPendingUpdate(ctx context.Context, ids []string, update *domain.PendingUpdate) (int64, error)
	List(ctx context.Context, filter domain.DeviceFilter) ([]domain.Device, error)
}

//go:generate mockery --name AppVersionRepository --output ../mocks
type AppVersionRepository interface {
	Create(ctx context.Context, version *domain.AppVersion) error
	GetByID(ctx context.Context, id string) (*domain.AppVersion, error)
	List(ctx context.Context) ([]domain.AppVersion, error)
	MarkDistributed(ctx context.Context, id string, count int64, at time.Time) error
}

//go:generate mockery --name ActionLogRepository --output ../mocks
type ActionLogRepository interface {
	Create(ctx context.Context, entry *domain.ActionLogEntry) error
	List(ctx context.Context, filter domain.ActionLogFilter) ([]domain.ActionLogEntry, error)
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

//go:generate mockery --name IdentityRepository --output ../mocks
type IdentityRepository interface {
	Create(ctx context.Context, identity *domain.Identity) error
	GetByUID(ctx context.Context, uid string) (*domain.Identity, error)
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
	Update(ctx context.Context, identity *domain.Identity) error
	Delete(ctx context.Context, uid string) error
	// ListUnreferenced returns identities of the given origins, created before
	// the cutoff, that no tenant or device points at.
	ListUnreferenced(ctx context.Context, origins []string, createdBefore time.Time) ([]domain.Identity, error)
}

//go:generate mockery --name NotificationRepository --output ../mocks
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	SentSince(ctx context.Context, tenantID string, kind domain.NotificationKind, since time.Time) (bool, error)
}

//go:generate mockery --name SnapshotRepository --output ../mocks
type SnapshotRepository interface {
	// Export returns every row of a backed-up collection.
	Export(ctx context.Context, collection string) ([]map[string]interface{}, error)
}

//go:generate mockery --name OpenSearchRepository --output ../mocks
type OpenSearchRepository interface {
	Index(ctx context.Context, entry *domain.ActionLogEntry) error
	BulkIndex(ctx context.Context, entries []domain.ActionLogEntry) error
	Search(ctx context.Context, filter domain.ActionLogFilter) ([]domain.ActionLogEntry, error)
	CreateIndex(ctx context.Context, t time.Time) error
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Tenant() TenantRepository
	Admin() AdminRepository
	Brand() BrandRepository
	Unit() UnitRepository
	Device() DeviceRepository
	AppVersion() AppVersionRepository
	ActionLog() ActionLogRepository
	Identity() IdentityRepository
	Notification() NotificationRepository
	Snapshot() SnapshotRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	OpenSearch() OpenSearchRepository
}
