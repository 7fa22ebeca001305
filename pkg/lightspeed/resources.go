package lightspeed

import (
	"encoding/json"
	"time"
)

// AccountResponse is the envelope returned by GET /account.json.
type AccountResponse struct {
	Account Account `json:"account" yaml:"account"`
}

// UnmarshalJSON decodes the envelope and requires the account object.
func (r *AccountResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Account *Account `json:"account"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	if raw.Account == nil {
		return &MissingFieldError{Field: "account"}
	}

	r.Account = *raw.Account

	return nil
}

// Account represents the API account the credentials belong to.
type Account struct {
	ID          int64  `json:"id"          yaml:"id"`
	AppID       AppID  `json:"appId"       yaml:"appId"`
	APIKey      string `json:"apiKey"      yaml:"apiKey"`
	Signout     Link   `json:"signout"     yaml:"signout"`
	Permissions Link   `json:"permissions" yaml:"permissions"`
	RateLimit   Link   `json:"ratelimit"   yaml:"ratelimit"`
	Metafields  Link   `json:"metafields"  yaml:"metafields"`
}

// UnmarshalJSON decodes an account and requires every field to be present.
func (a *Account) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          *int64  `json:"id"`
		AppID       *AppID  `json:"appId"`
		APIKey      *string `json:"apiKey"`
		Signout     *Link   `json:"signout"`
		Permissions *Link   `json:"permissions"`
		RateLimit   *Link   `json:"ratelimit"`
		Metafields  *Link   `json:"metafields"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	err = requireFields(
		requiredField{"id", raw.ID != nil},
		requiredField{"appId", raw.AppID != nil},
		requiredField{"apiKey", raw.APIKey != nil},
		requiredField{"signout", raw.Signout != nil},
		requiredField{"permissions", raw.Permissions != nil},
		requiredField{"ratelimit", raw.RateLimit != nil},
		requiredField{"metafields", raw.Metafields != nil},
	)
	if err != nil {
		return err
	}

	*a = Account{
		ID:          *raw.ID,
		AppID:       *raw.AppID,
		APIKey:      *raw.APIKey,
		Signout:     *raw.Signout,
		Permissions: *raw.Permissions,
		RateLimit:   *raw.RateLimit,
		Metafields:  *raw.Metafields,
	}

	return nil
}

// Link points at a related resource.
type Link struct {
	Resource ResourceLink `json:"resource" yaml:"resource"`
}

// UnmarshalJSON requires the nested resource object.
func (l *Link) UnmarshalJSON(data []byte) error {
	var raw struct {
		Resource *ResourceLink `json:"resource"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	if raw.Resource == nil {
		return &MissingFieldError{Field: "resource"}
	}

	l.Resource = *raw.Resource

	return nil
}

// ResourceLink holds the relative path and absolute URL of a resource.
type ResourceLink struct {
	URL  string `json:"url"  yaml:"url"`
	Link string `json:"link" yaml:"link"`
}

// UnmarshalJSON requires both url and link.
func (r *ResourceLink) UnmarshalJSON(data []byte) error {
	var raw struct {
		URL  *string `json:"url"`
		Link *string `json:"link"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	err = requireFields(
		requiredField{"resource.url", raw.URL != nil},
		requiredField{"resource.link", raw.Link != nil},
	)
	if err != nil {
		return err
	}

	r.URL = *raw.URL
	r.Link = *raw.Link

	return nil
}

type requiredField struct {
	name    string
	present bool
}

func requireFields(fields ...requiredField) error {
	for _, f := range fields {
		if !f.present {
			return &MissingFieldError{Field: f.name}
		}
	}

	return nil
}

// AccountPermissions lists read/write access per area of the shop.
// Not yet mapped to an endpoint or wire format.
type AccountPermissions struct {
	Content   Permission
	Products  Permission
	Customers Permission
	Orders    Permission
	Settings  Permission
	Tracking  Permission
}

// Permission is a read/write flag pair.
type Permission struct {
	Read  bool
	Write bool
}

// RateLimits groups the rate limit windows of an account.
// Not yet mapped to an endpoint or wire format.
type RateLimits struct {
	Limit5Min RateLimit
	LimitHour RateLimit
	LimitDay  RateLimit
}

// RateLimit is a single rate limit window.
type RateLimit struct {
	Limit     int64
	Remaining int64
	// Reset is the number of seconds until the window resets.
	Reset     int64
	ResetTime time.Time
}
