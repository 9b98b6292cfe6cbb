package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
)

type IdentityRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewIdentityRepository(writerDB, readerDB *gorm.DB) *IdentityRepository {
	return &IdentityRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *IdentityRepository) Create(ctx context.Context, identity *domain.Identity) error {
	if identity.UID == "" {
		identity.UID = uuid.New().String()
	}
	return translateError(r.writerDB.WithContext(ctx).Create(identity).Error)
}

// Identity reads go to the writer: token verification must observe
// disable and claim changes immediately.
func (r *IdentityRepository) GetByUID(ctx context.Context, uid string) (*domain.Identity, error) {
	if _, err := uuid.Parse(uid); err != nil {
		return nil, repository.ErrNotFound
	}
	var identity domain.Identity
	if err := r.writerDB.WithContext(ctx).First(&identity, "uid = ?", uid).Error; err != nil {
		return nil, translateError(err)
	}
	return &identity, nil
}

func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	var identity domain.Identity
	if err := r.writerDB.WithContext(ctx).First(&identity, "email = ?", email).Error; err != nil {
		return nil, translateError(err)
	}
	return &identity, nil
}

func (r *IdentityRepository) Update(ctx context.Context, identity *domain.Identity) error {
	return translateError(r.writerDB.WithContext(ctx).Save(identity).Error)
}

func (r *IdentityRepository) Delete(ctx context.Context, uid string) error {
	if _, err := uuid.Parse(uid); err != nil {
		return repository.ErrNotFound
	}
	res := r.writerDB.WithContext(ctx).Delete(&domain.Identity{}, "uid = ?", uid)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *IdentityRepository) ListUnreferenced(ctx context.Context, origins []string, createdBefore time.Time) ([]domain.Identity, error) {
	var identities []domain.Identity
	err := r.writerDB.WithContext(ctx).
		Where("origin IN ? AND created_at < ?", origins, createdBefore).
		Where("NOT EXISTS (SELECT 1 FROM tenants WHERE tenants.identity_ref = identities.uid::text)").
		Where("NOT EXISTS (SELECT 1 FROM devices WHERE devices.identity_ref = identities.uid::text)").
		Find(&identities).Error
	if err != nil {
		return nil, translateError(err)
	}
	return identities, nil
}
