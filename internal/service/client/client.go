package client

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/practiq/practiq_backend/internal/repo"
	entclient "github.com/practiq/practiq_backend/internal/repo/clientrecord"
	"github.com/practiq/practiq_backend/internal/validation"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateClientRequest struct {
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	DateOfBirth       string
	Address           string
	EmergencyContact  string
	EmergencyPhone    string
	InsuranceProvider string
	Notes             string
}

type UpdateClientRequest struct {
	FirstName         *string
	LastName          *string
	Email             *string
	Phone             *string
	DateOfBirth       *string
	Address           *string
	EmergencyContact  *string
	EmergencyPhone    *string
	InsuranceProvider *string
	Notes             *string
	Status            *string
}

type ListClientsRequest struct {
	Status *string
	Order  string // asc | desc
}

// ValidationError carries field-level messages for expected-invalid input.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string { return "client validation failed" }

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, therapistID uuid.UUID, req CreateClientRequest) (*repo.ClientRecord, error)
	GetByID(ctx context.Context, therapistID, clientID uuid.UUID) (*repo.ClientRecord, error)
	List(ctx context.Context, therapistID uuid.UUID, req ListClientsRequest) ([]*repo.ClientRecord, error)
	Update(ctx context.Context, therapistID, clientID uuid.UUID, req UpdateClientRequest) (*repo.ClientRecord, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type clientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &clientService{db: db}
}

func (s *clientService) Create(ctx context.Context, therapistID uuid.UUID, req CreateClientRequest) (*repo.ClientRecord, error) {
	rec, fieldErrs := validation.ValidateClient(validation.ClientInput{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		DateOfBirth:       req.DateOfBirth,
		Address:           req.Address,
		EmergencyContact:  req.EmergencyContact,
		EmergencyPhone:    req.EmergencyPhone,
		InsuranceProvider: req.InsuranceProvider,
		Notes:             req.Notes,
	})
	if fieldErrs != nil {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	c := s.db.ClientRecord.Create().
		SetTherapistID(therapistID).
		SetFirstName(rec.FirstName).
		SetLastName(rec.LastName).
		SetNillableEmail(nilIfEmpty(rec.Email)).
		SetNillablePhone(nilIfEmpty(rec.Phone)).
		SetNillableDateOfBirth(nilIfEmpty(rec.DateOfBirth)).
		SetNillableAddress(nilIfEmpty(rec.Address)).
		SetNillableEmergencyContact(nilIfEmpty(rec.EmergencyContact)).
		SetNillableEmergencyPhone(nilIfEmpty(rec.EmergencyPhone)).
		SetNillableInsuranceProvider(nilIfEmpty(rec.InsuranceProvider)).
		SetNillableNotes(nilIfEmpty(rec.Notes))

	created, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return created, nil
}

func (s *clientService) GetByID(ctx context.Context, therapistID, clientID uuid.UUID) (*repo.ClientRecord, error) {
	c, err := s.db.ClientRecord.Query().
		Where(entclient.ID(clientID), entclient.TherapistID(therapistID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (s *clientService) List(ctx context.Context, therapistID uuid.UUID, req ListClientsRequest) ([]*repo.ClientRecord, error) {
	q := s.db.ClientRecord.Query().
		Where(entclient.TherapistID(therapistID))

	if req.Status != nil {
		switch *req.Status {
		case "active", "inactive":
			q = q.Where(entclient.StatusEQ(entclient.Status(*req.Status)))
		default:
			return nil, ErrInvalidStatus
		}
	}

	if req.Order == "asc" {
		q = q.Order(entclient.ByCreatedAt(sql.OrderAsc()))
	} else {
		q = q.Order(entclient.ByCreatedAt(sql.OrderDesc()))
	}

	clients, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) Update(ctx context.Context, therapistID, clientID uuid.UUID, req UpdateClientRequest) (*repo.ClientRecord, error) {
	c, err := s.GetByID(ctx, therapistID, clientID)
	if err != nil {
		return nil, err
	}

	fieldErrs := validation.FieldErrors{}
	u := s.db.ClientRecord.UpdateOne(c)

	if req.FirstName != nil {
		if len(*req.FirstName) < 2 {
			fieldErrs["first_name"] = "first name must be at least 2 characters"
		} else {
			u = u.SetFirstName(*req.FirstName)
		}
	}
	if req.LastName != nil {
		if len(*req.LastName) < 2 {
			fieldErrs["last_name"] = "last name must be at least 2 characters"
		} else {
			u = u.SetLastName(*req.LastName)
		}
	}
	if req.Email != nil {
		u = u.SetNillableEmail(req.Email)
	}
	if req.Phone != nil {
		normalized := validation.NormalizePhone(*req.Phone)
		u = u.SetNillablePhone(&normalized)
	}
	if req.DateOfBirth != nil {
		u = u.SetNillableDateOfBirth(req.DateOfBirth)
	}
	if req.Address != nil {
		u = u.SetNillableAddress(req.Address)
	}
	if req.EmergencyContact != nil {
		u = u.SetNillableEmergencyContact(req.EmergencyContact)
	}
	if req.EmergencyPhone != nil {
		normalized := validation.NormalizePhone(*req.EmergencyPhone)
		u = u.SetNillableEmergencyPhone(&normalized)
	}
	if req.InsuranceProvider != nil {
		u = u.SetNillableInsuranceProvider(req.InsuranceProvider)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}
	if req.Status != nil {
		switch *req.Status {
		case "active", "inactive":
			u = u.SetStatus(entclient.Status(*req.Status))
		default:
			fieldErrs["status"] = "status must be active or inactive"
		}
	}

	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return updated, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
