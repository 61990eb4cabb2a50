package handler

import (
	"time"
)

type stepRequest struct {
	Order       int    `json:"order"`
	Description string `json:"description" validate:"required"`
}

type createProposalRequest struct {
	Title       string        `json:"title" validate:"required"`
	DomainType  string        `json:"domain_type" validate:"required"`
	Description string        `json:"description"`
	Link        string        `json:"link" validate:"omitempty,url"`
	Steps       []stepRequest `json:"steps" validate:"dive"`
}

type proposalResponse struct {
	ID           string    `json:"id"`
	ToolID       string    `json:"tool_id"`
	ToolTitle    string    `json:"tool_title"`
	ClientID     string    `json:"client_id"`
	CreationDate time.Time `json:"creation_date"`
}

type messageResponse struct {
	Message string `json:"message"`
}
