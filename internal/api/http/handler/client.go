package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/practiq/practiq_backend/internal/domain"
	"github.com/practiq/practiq_backend/internal/service/client"
	"github.com/practiq/practiq_backend/internal/store"
)

type ClientHandler struct {
	ws *store.Manager
}

func NewClientHandler(ws *store.Manager) *ClientHandler {
	return &ClientHandler{ws: ws}
}

func mapClientError(c fiber.Ctx, err error) error {
	var vErr *client.ValidationError
	switch {
	case errors.As(err, &vErr):
		return fieldErrors(c, vErr.Fields)
	case errors.Is(err, client.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, client.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /clients
func (h *ClientHandler) List(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return mapClientError(c, err)
	}

	clients := st.Clients()
	if status := c.Query("status"); status != "" {
		filtered := clients[:0]
		for _, cl := range clients {
			if string(cl.Status) == status {
				filtered = append(filtered, cl)
			}
		}
		clients = filtered
	}

	return ok(c, clients)
}

// POST /clients
func (h *ClientHandler) Create(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FirstName         string `json:"first_name"`
		LastName          string `json:"last_name"`
		Email             string `json:"email"`
		Phone             string `json:"phone"`
		DateOfBirth       string `json:"date_of_birth"`
		Address           string `json:"address"`
		EmergencyContact  string `json:"emergency_contact"`
		EmergencyPhone    string `json:"emergency_phone"`
		InsuranceProvider string `json:"insurance_provider"`
		Notes             string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return mapClientError(c, err)
	}

	createdClient, err := st.AddClient(c.Context(), domain.Client{
		FirstName:         body.FirstName,
		LastName:          body.LastName,
		Email:             body.Email,
		Phone:             body.Phone,
		DateOfBirth:       body.DateOfBirth,
		Address:           body.Address,
		EmergencyContact:  body.EmergencyContact,
		EmergencyPhone:    body.EmergencyPhone,
		InsuranceProvider: body.InsuranceProvider,
		Notes:             body.Notes,
	})
	if err != nil {
		return mapClientError(c, err)
	}

	return created(c, createdClient)
}

// GET /clients/:id
func (h *ClientHandler) Get(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return mapClientError(c, err)
	}

	cl, found := st.Client(clientID)
	if !found {
		return notFound(c, client.ErrNotFound.Error())
	}
	return ok(c, cl)
}

// PATCH /clients/:id
func (h *ClientHandler) Update(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	var body struct {
		FirstName         *string `json:"first_name"`
		LastName          *string `json:"last_name"`
		Email             *string `json:"email"`
		Phone             *string `json:"phone"`
		DateOfBirth       *string `json:"date_of_birth"`
		Address           *string `json:"address"`
		EmergencyContact  *string `json:"emergency_contact"`
		EmergencyPhone    *string `json:"emergency_phone"`
		InsuranceProvider *string `json:"insurance_provider"`
		Notes             *string `json:"notes"`
		Status            *string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return mapClientError(c, err)
	}

	cur, found := st.Client(clientID)
	if !found {
		return notFound(c, client.ErrNotFound.Error())
	}

	applyStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyStr(&cur.FirstName, body.FirstName)
	applyStr(&cur.LastName, body.LastName)
	applyStr(&cur.Email, body.Email)
	applyStr(&cur.Phone, body.Phone)
	applyStr(&cur.DateOfBirth, body.DateOfBirth)
	applyStr(&cur.Address, body.Address)
	applyStr(&cur.EmergencyContact, body.EmergencyContact)
	applyStr(&cur.EmergencyPhone, body.EmergencyPhone)
	applyStr(&cur.InsuranceProvider, body.InsuranceProvider)
	applyStr(&cur.Notes, body.Notes)
	if body.Status != nil {
		cur.Status = domain.ClientStatus(*body.Status)
	}

	updated, err := st.UpdateClient(c.Context(), cur)
	if err != nil {
		return mapClientError(c, err)
	}
	return ok(c, updated)
}
