package describe

import "context"

// Provider returns a prose description for a hotel.
type Provider interface {
	Describe(ctx context.Context, hotel HotelInfo) (string, error)
}

// StaticProvider serves the generated tiered description. It never
// fails and never touches the network.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Describe(_ context.Context, hotel HotelInfo) (string, error) {
	return Generate(hotel), nil
}
