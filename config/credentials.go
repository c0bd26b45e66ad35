package config

import (
	"context"
	"fmt"

	"ftxrest/pkg/ftx"
)

// Credentials resolves the API key pair. It returns nil without error when
// no key is configured, which limits the client to public endpoints.
func (c *FTXConfig) Credentials(ctx context.Context, store ParameterStore) (*ftx.Credentials, error) {
	key, secret, subaccount := c.APIKey, c.APISecret, c.Subaccount

	switch c.SecretsSource {
	case "", "env":
	case "ssm":
		if store == nil {
			var err error
			if store, err = NewParameterStore(ctx); err != nil {
				return nil, err
			}
		}
		var err error
		if key, err = getParameter(ctx, store, c.SSM.KeyParam, true); err != nil {
			return nil, err
		}
		if secret, err = getParameter(ctx, store, c.SSM.SecretParam, true); err != nil {
			return nil, err
		}
		if c.SSM.SubaccountParam != "" {
			if subaccount, err = getParameter(ctx, store, c.SSM.SubaccountParam, false); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("unknown secrets source %q", c.SecretsSource)
	}

	if key == "" && secret == "" {
		return nil, nil
	}
	return ftx.NewCredentials(key, secret, subaccount)
}
