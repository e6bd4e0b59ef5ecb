// Package workmail authenticates EWS requests against Amazon WorkMail, which
// exposes an EWS-compatible endpoint authorized with impersonation role
// tokens instead of Exchange credentials.
package workmail

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/workmail"
	"golang.org/x/oauth2"
)

// tokenRefreshBuffer refreshes the token this long before its expiry, so an
// in-flight request never carries a token about to lapse.
const tokenRefreshBuffer = 5 * time.Minute

// TokenSource issues WorkMail impersonation tokens. It implements
// oauth2.TokenSource, so it plugs into ews.HTTPClientWithBearerAuth.
// Tokens are cached and refreshed shortly before expiry; the source is safe
// for concurrent use.
type TokenSource struct {
	client         *workmail.Client
	organizationID string
	roleID         string

	mu      sync.Mutex
	current *oauth2.Token
}

var _ oauth2.TokenSource = (*TokenSource)(nil)

// NewTokenSource builds a token source using the default AWS credential
// chain (environment, shared credentials, IAM roles).
func NewTokenSource(ctx context.Context, region, organizationID, roleID string) (*TokenSource, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("workmail: loading AWS config: %w", err)
	}
	return NewTokenSourceWithConfig(cfg, organizationID, roleID), nil
}

// NewTokenSourceWithConfig builds a token source from an existing AWS
// config.
func NewTokenSourceWithConfig(cfg aws.Config, organizationID, roleID string) *TokenSource {
	return &TokenSource{
		client:         workmail.NewFromConfig(cfg),
		organizationID: organizationID,
		roleID:         roleID,
	}
}

// Token returns a valid impersonation token, assuming the role again when
// the cached token is missing or close to expiry.
func (ts *TokenSource) Token() (*oauth2.Token, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.current != nil && time.Now().Before(ts.current.Expiry.Add(-tokenRefreshBuffer)) {
		return ts.current, nil
	}

	resp, err := ts.client.AssumeImpersonationRole(context.Background(), &workmail.AssumeImpersonationRoleInput{
		OrganizationId:      &ts.organizationID,
		ImpersonationRoleId: &ts.roleID,
	})
	if err != nil {
		return nil, fmt.Errorf("workmail: assuming impersonation role: %w", err)
	}
	if resp.Token == nil || resp.ExpiresIn == nil {
		return nil, fmt.Errorf("workmail: AssumeImpersonationRole response missing token or expiry")
	}

	ts.current = &oauth2.Token{
		AccessToken: *resp.Token,
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(time.Duration(*resp.ExpiresIn) * time.Second),
	}
	return ts.current, nil
}
