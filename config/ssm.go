package config

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

const ssmTimeout = 5 * time.Second

// ParameterStore is the part of the SSM client used for secrets.
type ParameterStore interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NewParameterStore builds an SSM client from the default AWS configuration
// chain (env, shared config, instance role).
func NewParameterStore(ctx context.Context) (ParameterStore, error) {
	ctx, cancel := context.WithTimeout(ctx, ssmTimeout)
	defer cancel()

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

func getParameter(ctx context.Context, store ParameterStore, name string, decrypt bool) (string, error) {
	if name == "" {
		return "", fmt.Errorf("parameter name is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, ssmTimeout)
	defer cancel()

	result, err := store.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &name,
		WithDecryption: &decrypt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get parameter %s: %w", name, err)
	}

	if result.Parameter == nil || result.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %s has no value", name)
	}

	return *result.Parameter.Value, nil
}
