package entity

import (
	"time"
)

// Provider identifies how a user account was established.
type Provider string

const (
	ProviderLocal    Provider = "local"
	ProviderGoogle   Provider = "google"
	ProviderFacebook Provider = "facebook"
	ProviderGithub   Provider = "github"
)

// User is the aggregate root for the user domain.
// Password holds the bcrypt hash once the record has been persisted;
// federated accounts carry a ProviderID instead and leave Password empty.
// Username and ProviderID are optional and unique only when present.
type User struct {
	ID          string
	Username    string
	Email       string
	Password    string
	Provider    Provider
	ProviderID  string
	DisplayName string
	AvatarURL   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
