package usecase

import (
	"context"
	"errors"

	"github.com/nduthigear/gearhq/internal/domain"
)

// ErrFeedNotConfigured is returned by Refresh when no Twitter credentials are
// present in the environment.
var ErrFeedNotConfigured = errors.New("twitter api key not configured")

// TwitterCredentials reports whether a feed credential source exists.
type TwitterCredentials interface {
	Configured() bool
}

const defaultFeedLimit = 10

// FeedUC serves the display-only surfaces: the gear HQ cards and the embedded
// Twitter feed.
type FeedUC struct {
	Gear        domain.GearRepo
	Twitter     domain.TwitterRepo
	Credentials TwitterCredentials
}

func (uc *FeedUC) ListGear(ctx context.Context, category string) ([]domain.GearProduct, error) {
	return uc.Gear.List(ctx, category)
}

func (uc *FeedUC) LatestPosts(ctx context.Context, limit int) ([]domain.TwitterPost, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	return uc.Twitter.Latest(ctx, limit)
}

// Refresh checks that feed credentials are configured and returns the stored
// posts. Live fetching against the Twitter API is intentionally not wired;
// stored data is served regardless.
func (uc *FeedUC) Refresh(ctx context.Context) ([]domain.TwitterPost, error) {
	if uc.Credentials == nil || !uc.Credentials.Configured() {
		return nil, ErrFeedNotConfigured
	}
	return uc.Twitter.Latest(ctx, defaultFeedLimit)
}
