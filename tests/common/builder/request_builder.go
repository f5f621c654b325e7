//go:build unit || e2e

package builder

import (
	"time"

	sr "roadside-marketplace/internal/domain/servicerequest"
	reqdto "roadside-marketplace/internal/handler/dto/request"
	"roadside-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	CustomerID   uuid.UUID
	ServiceType  string
	FromLocation string
	ToLocation   *string
	Now          time.Time
}

func NewRequestBuilder() *RequestBuilder {
	to := "Main St Garage"
	return &RequestBuilder{
		CustomerID:   uuid.New(),
		ServiceType:  "towing",
		FromLocation: "Highway 1, exit 12",
		ToLocation:   &to,
		Now:          time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) WithCustomer(id uuid.UUID) *RequestBuilder {
	b.CustomerID = id
	return b
}

func (b *RequestBuilder) BuildDomain() (*sr.Request, error) {
	return sr.NewRequest(b.CustomerID, b.ServiceType, b.FromLocation, b.ToLocation, b.Now)
}

func (b *RequestBuilder) MustBuildDomain() *sr.Request {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *RequestBuilder) BuildCreateDTO() reqdto.CreateServiceRequest {
	return reqdto.CreateServiceRequest{
		ServiceType:  b.ServiceType,
		FromLocation: b.FromLocation,
		ToLocation:   b.ToLocation,
	}
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	return queries.NewRequestView(b.MustBuildDomain())
}
