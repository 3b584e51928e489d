//go:build !protogen

package directory

import "context"

// Contractor is the people-service view of a contractor used for display.
type Contractor struct {
	ID          string
	DisplayName string
	Timezone    string
}

type Provider interface {
	GetContractor(ctx context.Context, contractorID string) (Contractor, error)
}

func NewProvider(_ string) (Provider, error) {
	return nil, nil
}
