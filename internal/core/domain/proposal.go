package domain

import (
	"errors"
	"time"
)

var ErrProposalNotFound = errors.New("proposal not found")
var ErrProposalExists = errors.New("proposal already exists")

// Proposal is a pending request to add a tool to the catalog. It owns its
// candidate tool until resolution: acceptance transfers the tool to the
// catalog, refusal or expiry destroys it. There is no stored status: a
// resolved proposal is simply deleted.
type Proposal struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	ToolID       string    `json:"tool_id" bson:"tool_id"`
	ToolTitle    string    `json:"tool_title" bson:"tool_title"`
	ClientID     string    `json:"client_id" bson:"client_id"`
	CreationDate time.Time `json:"creation_date" bson:"creation_date"`
}
