package ebay

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"gorm.io/gorm"

	"sellerhub/internal/models"
)

const (
	productionTokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
	sandboxTokenURL    = "https://api.sandbox.ebay.com/identity/v1/oauth2/token"
	productionAuthURL  = "https://auth.ebay.com/oauth2/authorize"
	sandboxAuthURL     = "https://auth.sandbox.ebay.com/oauth2/authorize"
)

// defaultScopes covers the sell-side APIs the backend fronts.
var defaultScopes = []string{
	"https://api.ebay.com/oauth/api_scope",
	"https://api.ebay.com/oauth/api_scope/sell.inventory",
	"https://api.ebay.com/oauth/api_scope/sell.account",
	"https://api.ebay.com/oauth/api_scope/sell.fulfillment",
}

// AuthConfig holds the application credentials for eBay's OAuth flows.
type AuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Sandbox      bool
	Scopes       []string
}

// AuthManager wraps the oauth2 flows and keeps persisted tokens fresh.
type AuthManager struct {
	oauthConfig *oauth2.Config
}

func NewAuthManager(cfg AuthConfig) *AuthManager {
	authURL, tokenURL := productionAuthURL, productionTokenURL
	if cfg.Sandbox {
		authURL, tokenURL = sandboxAuthURL, sandboxTokenURL
	}
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}
	return &AuthManager{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
	}
}

// AuthCodeURL returns the consent URL a seller is redirected to.
func (m *AuthManager) AuthCodeURL(state string) string {
	return m.oauthConfig.AuthCodeURL(state)
}

// Exchange trades an authorization code for a token pair.
func (m *AuthManager) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := m.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}
	return token, nil
}

// Refresh obtains a fresh access token from a refresh token.
func (m *AuthManager) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	source := m.oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("refreshing token: %w", err)
	}
	return token, nil
}

// TokenSource returns a TokenSource bound to an account's persisted token.
// Expired tokens are refreshed through the OAuth flow and written back.
func (m *AuthManager) TokenSource(db *gorm.DB, accountID string) TokenSource {
	return &accountTokenSource{manager: m, db: db, accountID: accountID}
}

type accountTokenSource struct {
	manager   *AuthManager
	db        *gorm.DB
	accountID string
}

func (s *accountTokenSource) AccessToken(ctx context.Context) (string, error) {
	var token models.EbayToken
	if err := s.db.First(&token, "account_id = ?", s.accountID).Error; err != nil {
		return "", fmt.Errorf("loading token for account %s: %w", s.accountID, err)
	}

	// Refresh a minute early so the token can't expire mid-call.
	if time.Until(token.ExpiresAt) > time.Minute {
		return token.AccessToken, nil
	}

	refreshed, err := s.manager.Refresh(ctx, token.RefreshToken)
	if err != nil {
		return "", err
	}

	token.AccessToken = refreshed.AccessToken
	token.ExpiresAt = refreshed.Expiry
	if refreshed.RefreshToken != "" {
		token.RefreshToken = refreshed.RefreshToken
	}
	if err := s.db.Save(&token).Error; err != nil {
		return "", fmt.Errorf("persisting refreshed token: %w", err)
	}
	return token.AccessToken, nil
}
