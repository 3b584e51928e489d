//go:build protogen

package directory

import (
	"context"
	"time"

	"github.com/NellsonAss/dd-scheduling/libs/grpcx"
	peoplev1 "github.com/NellsonAss/dd-scheduling/protos/gen/people/v1"
)

// Contractor is the people-service view of a contractor used for display.
type Contractor struct {
	ID          string
	DisplayName string
	Timezone    string
}

type Provider interface {
	GetContractor(ctx context.Context, contractorID string) (Contractor, error)
}

type grpcProvider struct {
	client peoplev1.PeopleServiceClient
}

func NewProvider(addr string) (Provider, error) {
	if addr == "" {
		return nil, nil
	}
	conn, err := grpcx.Dial(context.Background(), addr, grpcx.DialOptions{Timeout: 3 * time.Second})
	if err != nil {
		return nil, err
	}
	return &grpcProvider{client: peoplev1.NewPeopleServiceClient(conn)}, nil
}

func (p *grpcProvider) GetContractor(ctx context.Context, contractorID string) (Contractor, error) {
	resp, err := p.client.GetContractor(ctx, &peoplev1.GetContractorRequest{
		ContractorId: contractorID,
	})
	if err != nil {
		return Contractor{}, err
	}
	return Contractor{
		ID:          resp.GetContractorId(),
		DisplayName: resp.GetDisplayName(),
		Timezone:    resp.GetTimezone(),
	}, nil
}
