package models

import (
	"time"

	"github.com/tuj-devs/officehours-service/internal/domain"
)

// UpsertProfileRequest creates or replaces a professor's directory entry.
type UpsertProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProfessorResponse carries one directory entry.
type ProfessorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfessorListResponse carries the directory listing.
type ProfessorListResponse struct {
	Professors []*ProfessorResponse `json:"professors"`
}

// FromDomainProfessor converts a domain professor to the response model.
func FromDomainProfessor(p *domain.Professor) *ProfessorResponse {
	return &ProfessorResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// FromDomainProfessors converts a directory listing.
func FromDomainProfessors(list []*domain.Professor) *ProfessorListResponse {
	resp := &ProfessorListResponse{
		Professors: make([]*ProfessorResponse, 0, len(list)),
	}
	for _, p := range list {
		resp.Professors = append(resp.Professors, FromDomainProfessor(p))
	}
	return resp
}
