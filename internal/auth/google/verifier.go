package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"reelshelf/internal/domain"
	"reelshelf/internal/port"
)

const tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// tokeninfo returns every claim as a string, expiry included.
type tokenInfoResponse struct {
	Iss           string `json:"iss"`
	Aud           string `json:"aud"`
	Sub           string `json:"sub"`
	Exp           string `json:"exp"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
}

// Verifier validates Google ID tokens against the tokeninfo endpoint.
// Any verification failure collapses to ErrSocialAuthTokenInvalid so the
// login path never leaks why a token was rejected.
type Verifier struct {
	clientID   string
	httpClient *http.Client
}

// NewVerifier creates a new Google ID token verifier.
func NewVerifier(clientID string) *Verifier {
	return &Verifier{
		clientID: clientID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*port.SocialAuthClaims, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tokenInfoURL+"?id_token="+idToken, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating tokeninfo request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, domain.ErrSocialAuthTokenInvalid
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrSocialAuthTokenInvalid
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, domain.ErrSocialAuthTokenInvalid
	}
	if err := v.checkClaims(&info); err != nil {
		return nil, err
	}

	return &port.SocialAuthClaims{
		Subject:       info.Sub,
		Email:         info.Email,
		EmailVerified: info.EmailVerified == "true",
		FullName:      info.Name,
	}, nil
}

// checkClaims rejects tokens minted for another client, by another issuer,
// or already past their expiry. Google serves expired tokens from tokeninfo
// with a 200, so expiry has to be checked here.
func (v *Verifier) checkClaims(info *tokenInfoResponse) error {
	if info.Aud != v.clientID {
		return domain.ErrSocialAuthTokenInvalid
	}
	if info.Iss != "accounts.google.com" && info.Iss != "https://accounts.google.com" {
		return domain.ErrSocialAuthTokenInvalid
	}
	exp, err := strconv.ParseInt(info.Exp, 10, 64)
	if err != nil || time.Now().Unix() >= exp {
		return domain.ErrSocialAuthTokenInvalid
	}
	return nil
}

func (v *Verifier) Provider() string {
	return string(domain.ProviderGoogle)
}

var _ port.SocialTokenVerifier = (*Verifier)(nil)
