package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team represents a tenant workspace in the system.
type Team struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name      string             `json:"name" bson:"name" example:"Acme"`
	Slug      string             `json:"slug" bson:"slug" example:"acme"`
	Domain    string             `json:"domain" bson:"domain" example:"acme.io"`
	LogoKey   string             `json:"-" bson:"logoKey,omitempty"`
	OwnerID   primitive.ObjectID `json:"ownerId" bson:"ownerId" example:"507f1f77bcf86cd799439012"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
	DeletedAt *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// TeamWithRole pairs a team with the caller's role in it.
type TeamWithRole struct {
	Team *Team  `json:"team"`
	Role string `json:"role" example:"admin"`
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=100" example:"Acme"`
	Slug   string `json:"slug" binding:"required,min=2,max=50,slug" example:"acme"`
	Domain string `json:"domain" binding:"omitempty,fqdn" example:"acme.io"`
}

// UpdateTeamRequest is the payload for updating a team through the slug
// resource. Present fields are forwarded to the store verbatim; fields
// absent from the body are left untouched.
type UpdateTeamRequest struct {
	Name   *string `json:"name"`
	Slug   *string `json:"slug"`
	Domain *string `json:"domain"`
}

// TeamListResponse is the response for listing teams.
type TeamListResponse struct {
	Items      []Team     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// TeamSummary is a minimal team representation for embedding.
type TeamSummary struct {
	ID   primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439012"`
	Name string             `json:"name" example:"Acme"`
	Slug string             `json:"slug" example:"acme"`
}

// LogoUploadRequest is the payload for requesting a logo upload URL.
type LogoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required,imagemime" example:"image/png"`
}

// LogoUploadResponse carries a presigned URL for uploading a team logo.
type LogoUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn" example:"900"`
}
