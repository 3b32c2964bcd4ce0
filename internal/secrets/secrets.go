package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/staysharp/booking-api/internal/httperr"
)

// Credentials are the database login for the store handle.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Provider fetches database credentials once at process start.
type Provider interface {
	DBCredentials(ctx context.Context) (Credentials, error)
}

// Static returns fixed credentials, typically from the environment.
type Static Credentials

func (s Static) DBCredentials(ctx context.Context) (Credentials, error) {
	return Credentials(s), nil
}

type secretGetter interface {
	GetSecretValue(
		ctx context.Context,
		params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options),
	) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManager reads a JSON {"username","password"} secret.
type SecretsManager struct {
	client   secretGetter
	secretID string
}

func NewSecretsManager(ctx context.Context, region, secretID string) (*SecretsManager, error) {
	if strings.TrimSpace(secretID) == "" {
		return nil, errors.New("secret id is required")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &SecretsManager{
		client:   secretsmanager.NewFromConfig(cfg),
		secretID: secretID,
	}, nil
}

func (s *SecretsManager) DBCredentials(ctx context.Context) (Credentials, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretID),
	})
	if err != nil {
		return Credentials{}, httperr.Unavailable(
			"credentials_unavailable",
			"database credentials could not be retrieved",
			err,
		)
	}

	return ParseSecret(aws.ToString(out.SecretString))
}

// ParseSecret decodes a secret payload and requires both fields.
func ParseSecret(payload string) (Credentials, error) {
	var c Credentials
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return Credentials{}, fmt.Errorf("decode secret: %w", err)
	}
	if c.Username == "" || c.Password == "" {
		return Credentials{}, errors.New("secret must contain username and password")
	}
	return c, nil
}
