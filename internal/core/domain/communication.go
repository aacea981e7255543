package domain

import "time"

// CommunicationChannel is the medium a message went out on.
type CommunicationChannel string

const (
	ChannelSMS      CommunicationChannel = "SMS"
	ChannelEmail    CommunicationChannel = "EMAIL"
	ChannelWhatsApp CommunicationChannel = "WHATSAPP"
)

// CommunicationLog records one outbound message to members. The send itself
// is simulated; only the log entry is kept.
type CommunicationLog struct {
	LogID          string               `json:"logID"` // Primary key (UUID)
	TenantID       string               `json:"tenantID"`
	Channel        CommunicationChannel `json:"channel"`
	Subject        string               `json:"subject,omitempty"`
	Body           string               `json:"body"`
	RecipientCount int                  `json:"recipientCount"`
	TargetGroups   []string             `json:"targetGroups,omitempty"` // Group names, unenforced
	SentBy         string               `json:"sentBy"`                 // UserID reference
	SentAt         time.Time            `json:"sentAt"`
}
