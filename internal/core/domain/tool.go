package domain

import "errors"

// DomainType classifies a tool within the catalog.
type DomainType string

const (
	DomainServices           DomainType = "services"
	DomainDevelopment        DomainType = "development"
	DomainCybersecurity      DomainType = "cybersecurity"
	DomainCloud              DomainType = "cloud"
	DomainELearning          DomainType = "e_learning"
	DomainMathematics        DomainType = "mathematics"
	DomainElectronics        DomainType = "electronics"
	DomainDataScience        DomainType = "data_science"
	DomainProjectManagement  DomainType = "project_management"
	DomainDocumentGenerator  DomainType = "document_generator"
	DomainNetwork            DomainType = "network"
	DomainDatabase           DomainType = "database"
	DomainVirtualReality     DomainType = "virtual_reality"
	DomainDocker             DomainType = "docker"
	DomainVirtualEnvironment DomainType = "virtual_environment"
)

var ErrToolNotFound = errors.New("tool not found")

// Step is one ordered instruction for getting started with a tool.
type Step struct {
	Order       int    `json:"order" bson:"order"`
	Description string `json:"description" bson:"description"`
}

// Feedback is a comment left on a tool by a client.
type Feedback struct {
	Owner       string `json:"owner" bson:"owner"`
	Description string `json:"description" bson:"description"`
}

// Tool is a catalog entry describing a software resource. A tool is created
// inactive when proposed and only becomes visible in the general listing
// once its proposal is accepted.
type Tool struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	DomainType  DomainType `json:"domain_type" bson:"domain_type"`
	Description string     `json:"description" bson:"description"`
	Link        string     `json:"link" bson:"link"`
	Steps       []Step     `json:"steps" bson:"steps"`
	Feedbacks   []Feedback `json:"feedbacks" bson:"feedbacks"`
	Active      bool       `json:"active" bson:"active"`
}
