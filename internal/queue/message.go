package queue

import "encoding/json"

// Message is the generation job payload sent to downstream queue consumers.
// RequestCookies carries the experiment cookies of the originating request so
// the worker can tag the conversion event with the active variants.
type Message struct {
	ResumeID           string            `json:"resumeId"`
	CustomerID         string            `json:"customerId"`
	JobDescriptionText string            `json:"jobDescriptionText"`
	RequestCookies     map[string]string `json:"requestCookies,omitempty"`
	RequestID          string            `json:"requestId"`
	EnqueuedAt         string            `json:"enqueuedAt"`
	Version            int               `json:"version"`
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeMessage parses a JSON payload into a Message.
func DecodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}
