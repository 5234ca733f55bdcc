package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// SplitServiceName is the fully-qualified name of SplitService.
const SplitServiceName = "splitledger.v1.SplitService"

// Procedure paths for SplitService.
const (
	SplitServiceCalculateSplitsProcedure    = "/splitledger.v1.SplitService/CalculateSplits"
	SplitServiceValidateSplitsProcedure     = "/splitledger.v1.SplitService/ValidateSplits"
	SplitServiceDefaultSplitInputsProcedure = "/splitledger.v1.SplitService/DefaultSplitInputs"
)

// SplitServiceHandler is implemented by the server side of SplitService.
type SplitServiceHandler interface {
	CalculateSplits(context.Context, *connect.Request[CalculateSplitsRequest]) (*connect.Response[CalculateSplitsResponse], error)
	ValidateSplits(context.Context, *connect.Request[ValidateSplitsRequest]) (*connect.Response[ValidateSplitsResponse], error)
	DefaultSplitInputs(context.Context, *connect.Request[DefaultSplitInputsRequest]) (*connect.Response[DefaultSplitInputsResponse], error)
}

// NewSplitServiceHandler builds an HTTP handler for svc and returns the path
// prefix to mount it on.
func NewSplitServiceHandler(svc SplitServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	calculateSplits := connect.NewUnaryHandler(SplitServiceCalculateSplitsProcedure, svc.CalculateSplits, opts...)
	validateSplits := connect.NewUnaryHandler(SplitServiceValidateSplitsProcedure, svc.ValidateSplits, opts...)
	defaultSplitInputs := connect.NewUnaryHandler(SplitServiceDefaultSplitInputsProcedure, svc.DefaultSplitInputs, opts...)

	return "/" + SplitServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SplitServiceCalculateSplitsProcedure:
			calculateSplits.ServeHTTP(w, r)
		case SplitServiceValidateSplitsProcedure:
			validateSplits.ServeHTTP(w, r)
		case SplitServiceDefaultSplitInputsProcedure:
			defaultSplitInputs.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// SplitServiceClient calls SplitService over Connect.
type SplitServiceClient struct {
	calculateSplits    *connect.Client[CalculateSplitsRequest, CalculateSplitsResponse]
	validateSplits     *connect.Client[ValidateSplitsRequest, ValidateSplitsResponse]
	defaultSplitInputs *connect.Client[DefaultSplitInputsRequest, DefaultSplitInputsResponse]
}

// NewSplitServiceClient constructs a client for the server at baseURL.
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SplitServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &SplitServiceClient{
		calculateSplits: connect.NewClient[CalculateSplitsRequest, CalculateSplitsResponse](
			httpClient, baseURL+SplitServiceCalculateSplitsProcedure, opts...),
		validateSplits: connect.NewClient[ValidateSplitsRequest, ValidateSplitsResponse](
			httpClient, baseURL+SplitServiceValidateSplitsProcedure, opts...),
		defaultSplitInputs: connect.NewClient[DefaultSplitInputsRequest, DefaultSplitInputsResponse](
			httpClient, baseURL+SplitServiceDefaultSplitInputsProcedure, opts...),
	}
}

// CalculateSplits calls splitledger.v1.SplitService.CalculateSplits.
func (c *SplitServiceClient) CalculateSplits(ctx context.Context, req *connect.Request[CalculateSplitsRequest]) (*connect.Response[CalculateSplitsResponse], error) {
	return c.calculateSplits.CallUnary(ctx, req)
}

// ValidateSplits calls splitledger.v1.SplitService.ValidateSplits.
func (c *SplitServiceClient) ValidateSplits(ctx context.Context, req *connect.Request[ValidateSplitsRequest]) (*connect.Response[ValidateSplitsResponse], error) {
	return c.validateSplits.CallUnary(ctx, req)
}

// DefaultSplitInputs calls splitledger.v1.SplitService.DefaultSplitInputs.
func (c *SplitServiceClient) DefaultSplitInputs(ctx context.Context, req *connect.Request[DefaultSplitInputsRequest]) (*connect.Response[DefaultSplitInputsResponse], error) {
	return c.defaultSplitInputs.CallUnary(ctx, req)
}
