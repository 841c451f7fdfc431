package dto

import "github.com/google/uuid"

// SessionCompletedMessage is the internal pubsub payload consumed by the
// practice stats worker.
type SessionCompletedMessage struct {
	SessionId   uuid.UUID `json:"session_id"`
	HostId      uuid.UUID `json:"host_id"`
	SessionType string    `json:"session_type"`
	Rating      int       `json:"rating"`
}
