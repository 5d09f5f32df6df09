package booking

import "context"

// DraftStore keeps in-progress drafts between wizard requests. Drafts
// are short-lived; implementations bound them with a TTL.
type DraftStore interface {
	Save(ctx context.Context, d *Draft) error

	// Get returns the draft_not_found business error for unknown or
	// expired ids.
	Get(ctx context.Context, id string) (*Draft, error)

	Delete(ctx context.Context, id string) error
}
