package postgres

import (
	"gorm.io/gorm"

	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/repository"
)

type postgresRepository struct {
	tenantRepo       repository.TenantRepository
	adminRepo        repository.AdminRepository
	brandRepo        repository.BrandRepository
	unitRepo         repository.UnitRepository
	deviceRepo       repository.DeviceRepository
	appVersionRepo   repository.AppVersionRepository
	actionLogRepo    repository.ActionLogRepository
	identityRepo     repository.IdentityRepository
	notificationRepo repository.NotificationRepository
	snapshotRepo     repository.SnapshotRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return newPostgresRepository(dbConnections.Writer, dbConnections.Reader)
}

func newPostgresRepository(writerDB, readerDB *gorm.DB) *postgresRepository {
	return &postgresRepository{
		tenantRepo:       NewTenantRepository(writerDB, readerDB),
		adminRepo:        NewAdminRepository(writerDB, readerDB),
		brandRepo:        NewBrandRepository(writerDB, readerDB),
		unitRepo:         NewUnitRepository(writerDB, readerDB),
		deviceRepo:       NewDeviceRepository(writerDB, readerDB),
		appVersionRepo:   NewAppVersionRepository(writerDB, readerDB),
		actionLogRepo:    NewActionLogRepository(writerDB, readerDB),
		identityRepo:     NewIdentityRepository(writerDB, readerDB),
		notificationRepo: NewNotificationRepository(writerDB, readerDB),
		snapshotRepo:     NewSnapshotRepository(readerDB),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Admin() repository.AdminRepository {
	return r.adminRepo
}

func (r *postgresRepository) Brand() repository.BrandRepository {
	return r.brandRepo
}

func (r *postgresRepository) Unit() repository.UnitRepository {
	return r.unitRepo
}

func (r *postgresRepository) Device() repository.DeviceRepository {
	return r.deviceRepo
}

func (r *postgresRepository) AppVersion() repository.AppVersionRepository {
	return r.appVersionRepo
}

func (r *postgresRepository) ActionLog() repository.ActionLogRepository {
	return r.actionLogRepo
}

func (r *postgresRepository) Identity() repository.IdentityRepository {
	return r.identityRepo
}

func (r *postgresRepository) Notification() repository.NotificationRepository {
	return r.notificationRepo
}

func (r *postgresRepository) Snapshot() repository.SnapshotRepository {
	return r.snapshotRepo
}
