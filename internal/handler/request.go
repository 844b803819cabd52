package handler

import "github.com/pushforge/fcm-composer/internal/payload"

// SendRequest mirrors the compose form. No field carries a binding rule: the
// composer performs no input validation, so empty token blocks, empty keys
// and an empty server key are all accepted and sent as-is.
type SendRequest struct {
	ServerKey           string                  `json:"server_key"`
	Tokens              string                  `json:"tokens"`
	NotificationEnabled bool                    `json:"notification_enabled"`
	Title               *string                 `json:"title"`
	Body                *string                 `json:"body"`
	DataEnabled         bool                    `json:"data_enabled"`
	Data                []payload.KeyValueEntry `json:"data"`
}

// Form snapshots the request into the payload builder's input.
func (r SendRequest) Form() payload.Form {
	return payload.Form{
		Tokens:              r.Tokens,
		NotificationEnabled: r.NotificationEnabled,
		Title:               r.Title,
		Body:                r.Body,
		DataEnabled:         r.DataEnabled,
		Entries:             payload.EntryList(r.Data),
	}
}
