package ftx

import "fmt"

// Credentials holds an API key pair and an optional subaccount nickname.
// The value is immutable and may be shared across goroutines.
type Credentials struct {
	key        string
	secret     string
	subaccount string
}

// NewCredentials validates that key and secret are present. An empty
// subaccount means the main account.
func NewCredentials(key, secret, subaccount string) (*Credentials, error) {
	if key == "" {
		return nil, constructionErr("credentials", "api key is empty", nil)
	}
	if secret == "" {
		return nil, constructionErr("credentials", "api secret is empty", nil)
	}
	return &Credentials{
		key:        key,
		secret:     secret,
		subaccount: subaccount,
	}, nil
}

// Key returns "" on nil credentials.
func (c *Credentials) Key() string {
	if c == nil {
		return ""
	}
	return c.key
}

func (c *Credentials) Subaccount() string {
	if c == nil {
		return ""
	}
	return c.subaccount
}

// String never includes the secret.
func (c *Credentials) String() string {
	if c == nil {
		return "Credentials{none}"
	}
	if c.subaccount == "" {
		return fmt.Sprintf("Credentials{key: %s}", c.key)
	}
	return fmt.Sprintf("Credentials{key: %s, subaccount: %s}", c.key, c.subaccount)
}
