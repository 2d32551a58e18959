package alarms

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
)

type assetResolver struct {
	lookup  AssetLookup
	timeout time.Duration
}

// Resolve returns nil without an error when no asset matches the id.
func (a assetResolver) Resolve(ctx context.Context, assetID string) (*types.AssetRecord, error) {
	id, err := uuid.Parse(strings.TrimSpace(assetID))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAssetID, assetID)
	}

	return fetch(ctx, a.timeout, "assets", func(ctx context.Context) (*types.AssetRecord, error) {
		return a.lookup.AssetByGUID(ctx, strings.ToLower(id.String()))
	})
}
