package oauth

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Identity is a federated identity confirmed against the provider itself.
// Every field comes from the provider's userinfo endpoint, never from the
// client request.
type Identity struct {
	ProviderAccountID string
	Email             string
	EmailVerified     bool
	Name              *string
	Image             *string
}

type Provider interface {
	// AuthCodeURL returns the provider consent URL for a state value.
	AuthCodeURL(state string) string
	// Verify exchanges the authorization code with the provider and fetches
	// the verified profile.
	Verify(ctx context.Context, code string) (Identity, error)
}

// Registry maps the provider path segment to its verifier.
type Registry map[string]Provider

func (r Registry) Lookup(name string) (Provider, bool) {
	p, ok := r[name]
	return p, ok
}

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleProvider struct {
	config *oauth2.Config
}

func NewGoogleProvider(clientID string, clientSecret string, redirectURL string, scopes []string) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *GoogleProvider) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Verify implements Provider.
func (g *GoogleProvider) Verify(ctx context.Context, code string) (Identity, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	client := g.config.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	var info struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Identity{}, fmt.Errorf("failed to decode userinfo: %w", err)
	}

	identity := Identity{
		ProviderAccountID: info.ID,
		Email:             info.Email,
		EmailVerified:     info.VerifiedEmail,
	}
	if info.Name != "" {
		identity.Name = &info.Name
	}
	if info.Picture != "" {
		identity.Image = &info.Picture
	}
	return identity, nil
}
