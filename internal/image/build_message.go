package image

import (
	"fmt"
	"strings"
)

// buildMessage is a single JSON message from the daemon's build stream
type buildMessage struct {
	Stream      string           `json:"stream"`
	Status      string           `json:"status"`
	ID          string           `json:"id"`
	Progress    string           `json:"progress"`
	Error       string           `json:"error"`
	ErrorDetail buildErrorDetail `json:"errorDetail"`
	Aux         map[string]interface{} `json:"aux"`
}

type buildErrorDetail struct {
	Message string `json:"message"`
}

func (m buildMessage) errorMessage() string {
	if msg := strings.TrimSpace(m.Error); msg != "" {
		return msg
	}
	return strings.TrimSpace(m.ErrorDetail.Message)
}

func (m buildMessage) render() string {
	if m.Stream != "" {
		return strings.TrimSpace(m.Stream)
	}
	if m.Status != "" {
		parts := make([]string, 0, 3)
		if id := strings.TrimSpace(m.ID); id != "" {
			parts = append(parts, id)
		}
		parts = append(parts, strings.TrimSpace(m.Status))
		if progress := strings.TrimSpace(m.Progress); progress != "" {
			parts = append(parts, progress)
		}
		return strings.Join(parts, " ")
	}
	if len(m.Aux) > 0 {
		if id, ok := m.Aux["ID"]; ok {
			return fmt.Sprintf("image id: %v", id)
		}
	}
	return ""
}
