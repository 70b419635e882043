package relocationrepo

import (
	"context"
	"errors"

	"relocation/internal/adapters/out/postgres/pgerr"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/relocation"
	"relocation/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRelocationRepository implements ports.RelocationRepository using GORM.
type GormRelocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRelocationRepository(db *gorm.DB, tracker aggregateTracker) *GormRelocationRepository {
	return &GormRelocationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRelocationRepository) Add(ctx context.Context, aggregate *relocation.Relocation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "relocation", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRelocationRepository) Update(ctx context.Context, aggregate *relocation.Relocation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RelocationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("relocation", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRelocationRepository) Get(ctx context.Context, id kernel.UUID) (*relocation.Relocation, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate locks the relocation row until the transaction ends.
func (r *GormRelocationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*relocation.Relocation, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormRelocationRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*relocation.Relocation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RelocationDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("relocation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
