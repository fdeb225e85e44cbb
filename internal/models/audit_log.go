package models

type AuditLog struct {
	ID string `json:"id"`

	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID string `json:"entity_id,omitempty"`
	Metadata string `json:"metadata,omitempty"`

	CreatedAt int64 `json:"created_at"`
}
