// Package incident is the thin wrapper the decomposed UI and the CLI use to
// reach the incidents API.
package incident

import "context"

// Client defines the operations the UI and CLI need from the incidents API.
type Client interface {
	List(ctx context.Context) ([]Incident, error)
	Create(ctx context.Context, req CreateRequest) (Incident, error)
	Health(ctx context.Context) (Health, error)
}
