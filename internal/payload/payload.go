package payload

import "strings"

// Payload is the FCM legacy-HTTP message body. RegistrationIDs is always
// serialized, even when empty; Notification and Data are serialized only
// when the corresponding form toggle was on at commit time.
type Payload struct {
	RegistrationIDs []string      `json:"registration_ids"`
	Notification    *Notification `json:"notification,omitempty"`
	Data            *Data         `json:"data,omitempty"`
}

// Notification carries the user-visible part of a push. Title and Body are
// passed through unvalidated; a nil field is omitted from the JSON, so an
// enabled notification with neither set marshals as {}.
type Notification struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

// Data is the silent key-value part of a push.
type Data map[string]string

// Form is a snapshot of the compose inputs. It is read once per send; the
// committed Payload never changes after Commit returns.
type Form struct {
	Tokens              string
	NotificationEnabled bool
	Title               *string
	Body                *string
	DataEnabled         bool
	Entries             EntryList
}

// Commit converts the form snapshot into the wire payload. No validation is
// performed: empty token lists, empty keys and empty values are all sent
// as-is and left for the gateway to reject.
func (f Form) Commit() Payload {
	p := Payload{
		RegistrationIDs: ParseTokens(f.Tokens),
	}
	if f.NotificationEnabled {
		p.Notification = &Notification{
			Title: f.Title,
			Body:  f.Body,
		}
	}
	if f.DataEnabled {
		data := f.Entries.Fold()
		p.Data = &data
	}
	return p
}

// ParseTokens splits a multi-line token block into one token per line.
// Surrounding whitespace is trimmed and blank lines are dropped; order and
// duplicates are preserved. Always returns a non-nil slice so the
// registration_ids field marshals as [] rather than null.
func ParseTokens(block string) []string {
	tokens := make([]string, 0)
	for _, line := range strings.Split(block, "\n") {
		token := strings.TrimSpace(line)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
