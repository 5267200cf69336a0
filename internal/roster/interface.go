package roster

import "context"

// Source defines where game rosters come from. Load returns the roster in
// source order; failures are reported as a *LoadError.
type Source interface {
	Load(ctx context.Context, sourceID string) ([]Player, error)
	Replace(ctx context.Context, sourceID string, players []Player) error
}
