package http

import (
	"time"

	"relocation/internal/core/application/usecases/queries"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func kernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func kernelIDPtr(id *openapi_types.UUID) (*kernel.UUID, error) {
	return kernel.UUIDPtrFromBytes(id)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func mapAll[T, R any](items []T, f func(T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = f(item)
	}
	return out
}

func toAccount(r queries.AccountResponse) servers.Account {
	return servers.Account{
		Id:         r.ID.Bytes(),
		Username:   r.Username,
		Email:      optional(r.Email),
		Role:       servers.AccountRole(r.Role),
		FirstName:  optional(r.Details.FirstName),
		LastName:   optional(r.Details.LastName),
		Contact:    optional(r.Details.Contact),
		Address:    optional(r.Details.Address),
		Verified:   r.Verified,
		JoinedAt:   r.JoinedAt,
		ProviderId: kernel.BytesPtr(r.ProviderID),
	}
}

func toProvider(r queries.ProviderResponse) servers.Provider {
	services := r.Info.ServicesOffered
	if services == nil {
		services = []string{}
	}
	return servers.Provider{
		Id:              r.ID.Bytes(),
		AccountId:       r.AccountID.Bytes(),
		CompanyName:     r.Info.CompanyName,
		ContactPerson:   r.Info.ContactPerson,
		ServicesOffered: services,
		PricingInfo:     optional(r.Info.PricingInfo),
		Available:       r.Available,
		Rating:          r.Rating.StringFixed(2),
		TotalReviews:    r.TotalReviews,
	}
}

func toRelocation(r queries.RelocationResponse) servers.Relocation {
	var cost *string
	if r.EstimatedCost != nil {
		s := r.EstimatedCost.String()
		cost = &s
	}
	return servers.Relocation{
		Id:            r.ID.Bytes(),
		AccountId:     r.AccountID.Bytes(),
		Origin:        r.Plan.Origin,
		Destination:   r.Plan.Destination,
		MovingDate:    openapi_types.Date{Time: r.Plan.MovingDate},
		Inventory:     optional(r.Plan.Inventory),
		Status:        r.Status.String(),
		EstimatedCost: cost,
		CreatedAt:     r.CreatedAt,
	}
}

func toBooking(r queries.BookingResponse) servers.Booking {
	return servers.Booking{
		Id:           r.ID.Bytes(),
		AccountId:    r.AccountID.Bytes(),
		ProviderId:   r.ProviderID.Bytes(),
		RelocationId: r.RelocationID.Bytes(),
		ServiceType:  r.Terms.ServiceType,
		BookingDate:  r.Terms.BookingDate,
		Status:       r.Status.String(),
		TotalAmount:  r.Terms.TotalAmount.String(),
		Notes:        optional(r.Terms.Notes),
		CreatedAt:    r.CreatedAt,
	}
}

func toShipment(r queries.ShipmentResponse) servers.Shipment {
	return servers.Shipment{
		Id:                r.ID.Bytes(),
		BookingId:         r.BookingID.Bytes(),
		TrackingNumber:    r.TrackingNumber,
		Status:            r.Status.String(),
		CurrentLocation:   optional(r.CurrentLocation),
		EstimatedDelivery: r.Schedule.EstimatedDelivery,
		ActualDelivery:    r.Schedule.ActualDelivery,
		Notes:             optional(r.Schedule.Notes),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func toTracking(r queries.TrackingResponse) servers.Tracking {
	return servers.Tracking{
		TrackingNumber:    r.TrackingNumber,
		Status:            r.Status.String(),
		CurrentLocation:   optional(r.CurrentLocation),
		EstimatedDelivery: r.EstimatedDelivery,
		ActualDelivery:    r.ActualDelivery,
		UpdatedAt:         r.UpdatedAt,
	}
}

func toPayment(r queries.PaymentResponse) servers.Payment {
	return servers.Payment{
		Id:            r.ID.Bytes(),
		BookingId:     r.BookingID.Bytes(),
		Amount:        r.Amount.String(),
		Method:        r.Method,
		Status:        string(r.Status),
		TransactionId: r.TransactionID,
		Notes:         optional(r.Notes),
		PaidAt:        r.PaidAt,
	}
}

func toReview(r queries.ReviewResponse) servers.Review {
	return servers.Review{
		Id:         r.ID.Bytes(),
		AccountId:  r.AccountID.Bytes(),
		Author:     r.Author,
		ProviderId: r.ProviderID.Bytes(),
		BookingId:  kernel.BytesPtr(r.BookingID),
		Rating:     r.Rating.Int(),
		Comment:    optional(r.Comment),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toDocument(r queries.DocumentResponse) servers.Document {
	return servers.Document{
		Id:           r.ID.Bytes(),
		AccountId:    r.AccountID.Bytes(),
		RelocationId: kernel.BytesPtr(r.RelocationID),
		Name:         r.Name,
		Type:         string(r.Type),
		Description:  optional(r.Description),
		UploadedAt:   r.UploadedAt,
	}
}

func datePtr(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}
