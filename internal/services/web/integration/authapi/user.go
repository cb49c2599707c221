package authapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// User is the authenticated profile returned by the API. Only the fields the
// dashboard chrome needs are decoded; Raw keeps the full object.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Raw       json.RawMessage
}

// Recognizable reports whether the profile carries an id.
func (u User) Recognizable() bool {
	return strings.TrimSpace(u.ID) != ""
}

// DisplayName returns the first name, falling back to the email.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.FirstName); name != "" {
		return name
	}
	return strings.TrimSpace(u.Email)
}

type userFields struct {
	ID        json.RawMessage `json:"id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
}

// UnmarshalJSON accepts any JSON object. The id may be a string or a number.
func (u *User) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("user profile must be a JSON object")
	}
	var fields userFields
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return err
	}
	id, err := decodeID(fields.ID)
	if err != nil {
		return err
	}
	*u = User{
		ID:        id,
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		Email:     fields.Email,
		Raw:       append(json.RawMessage(nil), trimmed...),
	}
	return nil
}

// MarshalJSON writes the retained profile unchanged.
func (u User) MarshalJSON() ([]byte, error) {
	if len(u.Raw) > 0 {
		return u.Raw, nil
	}
	return json.Marshal(struct {
		ID        string `json:"id,omitempty"`
		FirstName string `json:"first_name,omitempty"`
		LastName  string `json:"last_name,omitempty"`
		Email     string `json:"email,omitempty"`
	}{u.ID, u.FirstName, u.LastName, u.Email})
}

func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	switch raw[0] {
	case '"':
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return "", err
		}
		return strings.TrimSpace(id), nil
	default:
		var id json.Number
		if err := json.Unmarshal(raw, &id); err != nil {
			return "", fmt.Errorf("user id must be a string or number: %w", err)
		}
		return id.String(), nil
	}
}

// profile decodes an authenticated_user value and rejects unrecognizable
// profiles.
func profile(raw json.RawMessage) (User, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return User{}, fmt.Errorf("authenticated_user is missing: %w", ErrInvalidResponse)
	}
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return User{}, fmt.Errorf("decode authenticated_user: %w: %w", ErrInvalidResponse, err)
	}
	if !user.Recognizable() {
		return User{}, fmt.Errorf("authenticated_user has no id: %w", ErrInvalidResponse)
	}
	return user, nil
}
