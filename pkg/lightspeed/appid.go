package lightspeed

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AppID is the appId field of an account. The API sends either a string
// identifier of the app the credentials belong to, or a boolean (false)
// when they do not belong to an app. There is no tag on the wire; the shape
// of the value decides which variant is set.
//
// The zero value is the empty string identifier.
type AppID struct {
	id     string
	flag   bool
	isFlag bool
}

// NewAppID returns an AppID holding an app identifier.
func NewAppID(id string) AppID {
	return AppID{id: id}
}

// NoAppID returns an AppID holding the boolean "no app" sentinel.
func NoAppID(flag bool) AppID {
	return AppID{flag: flag, isFlag: true}
}

// ID returns the app identifier and true, or "" and false for the sentinel.
func (a AppID) ID() (string, bool) {
	if a.isFlag {
		return "", false
	}

	return a.id, true
}

// Sentinel returns the boolean value and true when no app is attached.
func (a AppID) Sentinel() (bool, bool) {
	if !a.isFlag {
		return false, false
	}

	return a.flag, true
}

// IsNone reports whether the account is not attached to an app.
func (a AppID) IsNone() bool {
	return a.isFlag
}

// String implements fmt.Stringer.
func (a AppID) String() string {
	if a.isFlag {
		return fmt.Sprintf("%t", a.flag)
	}

	return a.id
}

// MarshalJSON encodes the identifier as a JSON string or the sentinel as a
// JSON boolean.
func (a AppID) MarshalJSON() ([]byte, error) {
	if a.isFlag {
		return json.Marshal(a.flag)
	}

	return json.Marshal(a.id)
}

// UnmarshalJSON tries a string first and falls back to a boolean.
func (a *AppID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w, got null", ErrInvalidAppID)
	}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*a = NewAppID(id)

		return nil
	}

	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*a = NoAppID(flag)

		return nil
	}

	return fmt.Errorf("%w, got %s", ErrInvalidAppID, data)
}

// MarshalYAML encodes the same shapes as MarshalJSON.
func (a AppID) MarshalYAML() (interface{}, error) {
	if a.isFlag {
		return a.flag, nil
	}

	return a.id, nil
}

// UnmarshalYAML decodes a YAML boolean as the sentinel and any other scalar
// as an identifier.
func (a *AppID) UnmarshalYAML(value *yaml.Node) error {
	tag := value.ShortTag()
	if value.Kind != yaml.ScalarNode || tag == "!!null" {
		return fmt.Errorf("%w, got YAML %s", ErrInvalidAppID, tag)
	}

	if tag == "!!bool" {
		var flag bool
		if err := value.Decode(&flag); err != nil {
			return fmt.Errorf("decoding appId: %w", err)
		}

		*a = NoAppID(flag)

		return nil
	}

	*a = NewAppID(value.Value)

	return nil
}
