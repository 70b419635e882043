package queries

import (
	"context"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/review"
	"relocation/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var reviewScope = scopeColumns{
	account: "reviews.account_id",
	public:  "TRUE",
}

type reviewRow struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Author     string
	ProviderID uuid.UUID
	BookingID  *uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r reviewRow) toResponse() (ReviewResponse, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return ReviewResponse{}, err
	}
	accountID, err := toUUID(r.AccountID)
	if err != nil {
		return ReviewResponse{}, err
	}
	providerID, err := toUUID(r.ProviderID)
	if err != nil {
		return ReviewResponse{}, err
	}
	bookingID, err := kernel.UUIDPtrFromBytes(r.BookingID)
	if err != nil {
		return ReviewResponse{}, err
	}
	rating, err := review.NewRating(r.Rating)
	if err != nil {
		return ReviewResponse{}, err
	}

	return ReviewResponse{
		ID:         id,
		AccountID:  accountID,
		Author:     r.Author,
		ProviderID: providerID,
		BookingID:  bookingID,
		Rating:     rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

func selectReviews(db *gorm.DB) *gorm.DB {
	return db.Table("reviews").
		Select(`reviews.id, reviews.account_id, accounts.username AS author, reviews.provider_id,
			reviews.booking_id, reviews.rating, reviews.comment, reviews.created_at, reviews.updated_at`).
		Joins("JOIN accounts ON accounts.id = reviews.account_id")
}

type ListReviewsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListReviewsQueryHandler(db *gorm.DB) ListReviewsQueryHandler {
	return ListReviewsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns reviews newest first, restricted to one provider when the
// query names one.
func (h ListReviewsQueryHandler) Handle(ctx context.Context, query ListReviewsQuery) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope := h.policy.VisibleSet(query.Actor(), services.KindReview)

	db := applyScope(selectReviews(h.db.WithContext(ctx)), scope, reviewScope)
	if providerID := query.ProviderID(); providerID != nil {
		db = db.Where("reviews.provider_id = ?", providerID.Bytes())
	}

	var rows []reviewRow
	if err := db.Order("reviews.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	return mapRows(rows, reviewRow.toResponse)
}

type GetReviewQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetReviewQueryHandler(db *gorm.DB) GetReviewQueryHandler {
	return GetReviewQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetReviewQueryHandler) Handle(ctx context.Context, query GetReviewQuery) (ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return ReviewResponse{}, err
	}

	row, err := findOne[reviewRow](
		selectReviews(h.db.WithContext(ctx)).Where("reviews.id = ?", query.ReviewID().Bytes()),
		"review", query.ReviewID(),
	)
	if err != nil {
		return ReviewResponse{}, err
	}

	resp, err := row.toResponse()
	if err != nil {
		return ReviewResponse{}, err
	}

	ownership := services.Ownership{AccountID: resp.AccountID, Public: true}
	if err = h.policy.AuthorizeRead(query.Actor(), services.KindReview, resp.ID, ownership); err != nil {
		return ReviewResponse{}, err
	}
	return resp, nil
}
