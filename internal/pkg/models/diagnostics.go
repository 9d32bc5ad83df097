package models

// StoreDiagnostics is the payload of the store connectivity endpoint
type StoreDiagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// SchemaNames lists the entity types exposed by the schema viewer
var SchemaNames = []string{
	"TruckerUser", "Cafe", "QuizQuestion", "NewsItem", "GuideEntry", "TruckHistory", "ChatMessage",
}
