package audit

import "time"

// Action is the kind of operation an entry records.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionUpload Action = "upload"
	ActionExport Action = "export"
	ActionLogin  Action = "login"
	ActionLogout Action = "logout"
)

// Entry is an immutable audit record: who did what to which resource and
// when. The log is append-only; entries are never mutated or deleted.
type Entry struct {
	ID           string            `json:"id"`
	Action       Action            `json:"action"`
	ResourceType string            `json:"resourceType"`
	ResourceID   string            `json:"resourceId"`
	Metadata     map[string]string `json:"metadata"`
	Timestamp    time.Time         `json:"timestamp"`
	User         string            `json:"user"`
}
