package models

// User is a sync server account as seen by the client.
type User struct {
	// UserID is the server-side identifier of the account.
	UserID int64 `json:"userId"`

	// Permission is the access level within the current sharing group.
	Permission Permission `json:"permission"`

	// AccessToken is set when the server handed out a long-lived token
	// during sign-in. Empty otherwise.
	AccessToken string `json:"-"`
}
