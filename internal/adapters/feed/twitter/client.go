// Package twitter holds the credential plumbing for the Twitter API v2 feed.
// The storefront never fetches live tweets: refresh only requires credentials
// to be configured and then serves the stored posts.
package twitter

import (
	"context"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const tokenURL = "https://api.twitter.com/oauth2/token"

type Client struct {
	source oauth2.TokenSource
}

// NewFromEnv builds the token source from TWITTER_BEARER_TOKEN, or from the
// TWITTER_API_KEY / TWITTER_API_SECRET pair via the app-only OAuth2 flow.
// With neither present the client is unconfigured.
func NewFromEnv() *Client {
	if tok := os.Getenv("TWITTER_BEARER_TOKEN"); tok != "" {
		return &Client{source: oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: tok,
			TokenType:   "Bearer",
		})}
	}
	key := os.Getenv("TWITTER_API_KEY")
	secret := os.Getenv("TWITTER_API_SECRET")
	if key != "" && secret != "" {
		cfg := &clientcredentials.Config{
			ClientID:     key,
			ClientSecret: secret,
			TokenURL:     tokenURL,
		}
		return &Client{source: cfg.TokenSource(context.Background())}
	}
	return &Client{}
}

func (c *Client) Configured() bool {
	return c != nil && c.source != nil
}

// HTTPClient returns a client that attaches the bearer token, for when live
// fetching gets wired in.
func (c *Client) HTTPClient(ctx context.Context) *http.Client {
	if !c.Configured() {
		return http.DefaultClient
	}
	return oauth2.NewClient(ctx, c.source)
}
