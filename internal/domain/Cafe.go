package domain

import "time"

type CafeStatus string

const (
	CafeStatusActive   CafeStatus = "active"
	CafeStatusInactive CafeStatus = "inactive"
)

// Cafe representa um café cadastrado no painel
type Cafe struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Description string     `json:"description"`
	Status      CafeStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CafeInput contém os campos informados pelo usuário na criação de um café;
// id e timestamps são atribuídos pelo banco
type CafeInput struct {
	Name        string     `json:"name" validate:"required,max=120"`
	Address     string     `json:"address" validate:"max=255"`
	Phone       string     `json:"phone" validate:"max=32"`
	Email       string     `json:"email" validate:"omitempty,email"`
	Description string     `json:"description"`
	Status      CafeStatus `json:"status" validate:"required,oneof=active inactive"`
}

// CafePatch lista os campos que podem ser alterados em um café.
// Campos nil não são alterados.
type CafePatch struct {
	Name        *string     `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Address     *string     `json:"address,omitempty" validate:"omitempty,max=255"`
	Phone       *string     `json:"phone,omitempty" validate:"omitempty,max=32"`
	Email       *string     `json:"email,omitempty" validate:"omitempty,email"`
	Description *string     `json:"description,omitempty"`
	Status      *CafeStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

func (in *CafeInput) Materialize(id string, now time.Time) *Cafe {
	return &Cafe{
		ID:          id,
		Name:        in.Name,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		Description: in.Description,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Apply aplica os campos preenchidos do patch sobre o café
func (p *CafePatch) Apply(c *Cafe) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}
