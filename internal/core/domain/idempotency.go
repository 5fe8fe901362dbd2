package domain

import (
	"encoding/json"
	"time"
)

// IdempotencyRecord pins one logical operation outcome to a caller-supplied
// key. Unique on (tenant_id, key); created at most once per key.
type IdempotencyRecord struct {
	TenantID        string          `json:"tenantID"`
	Key             string          `json:"key"`
	RequestHash     string          `json:"requestHash"`
	ResponsePayload json.RawMessage `json:"responsePayload"`
	CreatedAt       time.Time       `json:"createdAt"`
}
