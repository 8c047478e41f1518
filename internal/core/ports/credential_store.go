package ports

import "context"

// CredentialStore persists the single bearer credential across process
// restarts. Load returns an empty string (and no error) when nothing is
// stored; an empty stored credential means "unauthenticated".
type CredentialStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, credential string) error
	Clear(ctx context.Context) error
}
