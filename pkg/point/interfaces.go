package point

import (
	"context"
	"net/http"
)

//go:generate mockgen -destination=mock_point.go -package=point github.com/carverauto/minut-go/pkg/point HTTPClient,TokenProvider,Requester

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenProvider defines the interface for obtaining access tokens. A
// provider may refresh the token silently between calls.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// Requester is the authenticated transport capability consumed by Session.
// A nil out discards the response body; otherwise the JSON body is decoded
// into out.
type Requester interface {
	Request(ctx context.Context, method, url string, body, out any) error
}
