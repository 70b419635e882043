package document

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"
)

// Type classifies an uploaded document.
type Type string

const (
	TypeContract  Type = "contract"
	TypeInvoice   Type = "invoice"
	TypeInsurance Type = "insurance"
	TypePassport  Type = "passport"
	TypeVisa      Type = "visa"
	TypeOther     Type = "other"
)

var (
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
	ErrStorageKeyIsRequired     = errs.NewValueIsRequiredError("file")
	ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")
)

func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeContract, TypeInvoice, TypeInsurance, TypePassport, TypeVisa, TypeOther:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("document_type", fmt.Errorf("%q is not a valid document type", s))
	}
}

// Document is a file an account uploaded, optionally attached to one of its
// relocations. The blob itself lives in file storage under storageKey.
type Document struct {
	id           kernel.UUID
	accountID    kernel.UUID
	relocationID *kernel.UUID
	name         string
	docType      Type
	storageKey   string
	description  string
	uploadedAt   time.Time
	guard        guard.ConstructorGuard
}

func NewDocument(
	id kernel.UUID,
	accountID kernel.UUID,
	relocationID *kernel.UUID,
	name string,
	docType Type,
	storageKey string,
	description string,
) (*Document, error) {
	d := &Document{
		relocationID: relocationID,
		description:  strings.TrimSpace(description),
		uploadedAt:   time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setAccountID(accountID),
		d.setName(name),
		d.setType(docType),
		d.setStorageKey(storageKey),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDocument rebuilds a document from storage.
func RestoreDocument(
	id kernel.UUID,
	accountID kernel.UUID,
	relocationID *kernel.UUID,
	name string,
	docType Type,
	storageKey string,
	description string,
	uploadedAt time.Time,
) *Document {
	return &Document{
		id:           id,
		accountID:    accountID,
		relocationID: relocationID,
		name:         name,
		docType:      docType,
		storageKey:   storageKey,
		description:  description,
		uploadedAt:   uploadedAt,
		guard:        guard.NewConstructorGuard(),
	}
}

func (d *Document) Validate() error {
	if d == nil {
		return ErrDocumentIsNotConstructed
	}
	return d.guard.Validate(ErrDocumentIsNotConstructed)
}

func (d *Document) ID() kernel.UUID {
	return d.id
}

func (d *Document) AccountID() kernel.UUID {
	return d.accountID
}

func (d *Document) RelocationID() *kernel.UUID {
	return d.relocationID
}

func (d *Document) Name() string {
	return d.name
}

func (d *Document) Type() Type {
	return d.docType
}

func (d *Document) StorageKey() string {
	return d.storageKey
}

func (d *Document) Description() string {
	return d.description
}

func (d *Document) UploadedAt() time.Time {
	return d.uploadedAt
}

func (d *Document) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Document) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("account", err)
	}
	d.accountID = accountID
	return nil
}

func (d *Document) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Document) setType(docType Type) error {
	t, err := ParseType(string(docType))
	if err != nil {
		return err
	}
	d.docType = t
	return nil
}

func (d *Document) setStorageKey(key string) error {
	if key == "" {
		return ErrStorageKeyIsRequired
	}
	d.storageKey = key
	return nil
}
