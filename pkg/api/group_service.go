package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// GroupServiceName is the fully-qualified name of GroupService.
const GroupServiceName = "splitledger.v1.GroupService"

// Procedure paths for GroupService.
const (
	GroupServiceCreateGroupProcedure       = "/splitledger.v1.GroupService/CreateGroup"
	GroupServiceGetGroupProcedure          = "/splitledger.v1.GroupService/GetGroup"
	GroupServiceListGroupsProcedure        = "/splitledger.v1.GroupService/ListGroups"
	GroupServiceUpdateGroupProcedure       = "/splitledger.v1.GroupService/UpdateGroup"
	GroupServiceDeleteGroupProcedure       = "/splitledger.v1.GroupService/DeleteGroup"
	GroupServiceAddMemberProcedure         = "/splitledger.v1.GroupService/AddMember"
	GroupServiceUpdateMemberProcedure      = "/splitledger.v1.GroupService/UpdateMember"
	GroupServiceRemoveMemberProcedure      = "/splitledger.v1.GroupService/RemoveMember"
	GroupServiceAddTransactionProcedure    = "/splitledger.v1.GroupService/AddTransaction"
	GroupServiceUpdateTransactionProcedure = "/splitledger.v1.GroupService/UpdateTransaction"
	GroupServiceDeleteTransactionProcedure = "/splitledger.v1.GroupService/DeleteTransaction"
	GroupServiceAddPaymentProcedure        = "/splitledger.v1.GroupService/AddPayment"
	GroupServiceDeletePaymentProcedure     = "/splitledger.v1.GroupService/DeletePayment"
	GroupServiceGetGroupBalancesProcedure  = "/splitledger.v1.GroupService/GetGroupBalances"
	GroupServiceExportGroupProcedure       = "/splitledger.v1.GroupService/ExportGroup"
)

// GroupServiceHandler is implemented by the server side of GroupService.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error)
	UpdateGroup(context.Context, *connect.Request[UpdateGroupRequest]) (*connect.Response[UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error)
	AddMember(context.Context, *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error)
	UpdateMember(context.Context, *connect.Request[UpdateMemberRequest]) (*connect.Response[UpdateMemberResponse], error)
	RemoveMember(context.Context, *connect.Request[RemoveMemberRequest]) (*connect.Response[RemoveMemberResponse], error)
	AddTransaction(context.Context, *connect.Request[AddTransactionRequest]) (*connect.Response[AddTransactionResponse], error)
	UpdateTransaction(context.Context, *connect.Request[UpdateTransactionRequest]) (*connect.Response[UpdateTransactionResponse], error)
	DeleteTransaction(context.Context, *connect.Request[DeleteTransactionRequest]) (*connect.Response[DeleteTransactionResponse], error)
	AddPayment(context.Context, *connect.Request[AddPaymentRequest]) (*connect.Response[AddPaymentResponse], error)
	DeletePayment(context.Context, *connect.Request[DeletePaymentRequest]) (*connect.Response[DeletePaymentResponse], error)
	GetGroupBalances(context.Context, *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error)
	ExportGroup(context.Context, *connect.Request[ExportGroupRequest]) (*connect.Response[ExportGroupResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler for svc and returns the path
// prefix to mount it on.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	handlers := map[string]http.Handler{
		GroupServiceCreateGroupProcedure:       connect.NewUnaryHandler(GroupServiceCreateGroupProcedure, svc.CreateGroup, opts...),
		GroupServiceGetGroupProcedure:          connect.NewUnaryHandler(GroupServiceGetGroupProcedure, svc.GetGroup, opts...),
		GroupServiceListGroupsProcedure:        connect.NewUnaryHandler(GroupServiceListGroupsProcedure, svc.ListGroups, opts...),
		GroupServiceUpdateGroupProcedure:       connect.NewUnaryHandler(GroupServiceUpdateGroupProcedure, svc.UpdateGroup, opts...),
		GroupServiceDeleteGroupProcedure:       connect.NewUnaryHandler(GroupServiceDeleteGroupProcedure, svc.DeleteGroup, opts...),
		GroupServiceAddMemberProcedure:         connect.NewUnaryHandler(GroupServiceAddMemberProcedure, svc.AddMember, opts...),
		GroupServiceUpdateMemberProcedure:      connect.NewUnaryHandler(GroupServiceUpdateMemberProcedure, svc.UpdateMember, opts...),
		GroupServiceRemoveMemberProcedure:      connect.NewUnaryHandler(GroupServiceRemoveMemberProcedure, svc.RemoveMember, opts...),
		GroupServiceAddTransactionProcedure:    connect.NewUnaryHandler(GroupServiceAddTransactionProcedure, svc.AddTransaction, opts...),
		GroupServiceUpdateTransactionProcedure: connect.NewUnaryHandler(GroupServiceUpdateTransactionProcedure, svc.UpdateTransaction, opts...),
		GroupServiceDeleteTransactionProcedure: connect.NewUnaryHandler(GroupServiceDeleteTransactionProcedure, svc.DeleteTransaction, opts...),
		GroupServiceAddPaymentProcedure:        connect.NewUnaryHandler(GroupServiceAddPaymentProcedure, svc.AddPayment, opts...),
		GroupServiceDeletePaymentProcedure:     connect.NewUnaryHandler(GroupServiceDeletePaymentProcedure, svc.DeletePayment, opts...),
		GroupServiceGetGroupBalancesProcedure:  connect.NewUnaryHandler(GroupServiceGetGroupBalancesProcedure, svc.GetGroupBalances, opts...),
		GroupServiceExportGroupProcedure:       connect.NewUnaryHandler(GroupServiceExportGroupProcedure, svc.ExportGroup, opts...),
	}

	return "/" + GroupServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// GroupServiceClient calls GroupService over Connect.
type GroupServiceClient struct {
	createGroup       *connect.Client[CreateGroupRequest, CreateGroupResponse]
	getGroup          *connect.Client[GetGroupRequest, GetGroupResponse]
	listGroups        *connect.Client[ListGroupsRequest, ListGroupsResponse]
	updateGroup       *connect.Client[UpdateGroupRequest, UpdateGroupResponse]
	deleteGroup       *connect.Client[DeleteGroupRequest, DeleteGroupResponse]
	addMember         *connect.Client[AddMemberRequest, AddMemberResponse]
	updateMember      *connect.Client[UpdateMemberRequest, UpdateMemberResponse]
	removeMember      *connect.Client[RemoveMemberRequest, RemoveMemberResponse]
	addTransaction    *connect.Client[AddTransactionRequest, AddTransactionResponse]
	updateTransaction *connect.Client[UpdateTransactionRequest, UpdateTransactionResponse]
	deleteTransaction *connect.Client[DeleteTransactionRequest, DeleteTransactionResponse]
	addPayment        *connect.Client[AddPaymentRequest, AddPaymentResponse]
	deletePayment     *connect.Client[DeletePaymentRequest, DeletePaymentResponse]
	getGroupBalances  *connect.Client[GetGroupBalancesRequest, GetGroupBalancesResponse]
	exportGroup       *connect.Client[ExportGroupRequest, ExportGroupResponse]
}

// NewGroupServiceClient constructs a client for the server at baseURL.
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *GroupServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &GroupServiceClient{
		createGroup: connect.NewClient[CreateGroupRequest, CreateGroupResponse](
			httpClient, baseURL+GroupServiceCreateGroupProcedure, opts...),
		getGroup: connect.NewClient[GetGroupRequest, GetGroupResponse](
			httpClient, baseURL+GroupServiceGetGroupProcedure, opts...),
		listGroups: connect.NewClient[ListGroupsRequest, ListGroupsResponse](
			httpClient, baseURL+GroupServiceListGroupsProcedure, opts...),
		updateGroup: connect.NewClient[UpdateGroupRequest, UpdateGroupResponse](
			httpClient, baseURL+GroupServiceUpdateGroupProcedure, opts...),
		deleteGroup: connect.NewClient[DeleteGroupRequest, DeleteGroupResponse](
			httpClient, baseURL+GroupServiceDeleteGroupProcedure, opts...),
		addMember: connect.NewClient[AddMemberRequest, AddMemberResponse](
			httpClient, baseURL+GroupServiceAddMemberProcedure, opts...),
		updateMember: connect.NewClient[UpdateMemberRequest, UpdateMemberResponse](
			httpClient, baseURL+GroupServiceUpdateMemberProcedure, opts...),
		removeMember: connect.NewClient[RemoveMemberRequest, RemoveMemberResponse](
			httpClient, baseURL+GroupServiceRemoveMemberProcedure, opts...),
		addTransaction: connect.NewClient[AddTransactionRequest, AddTransactionResponse](
			httpClient, baseURL+GroupServiceAddTransactionProcedure, opts...),
		updateTransaction: connect.NewClient[UpdateTransactionRequest, UpdateTransactionResponse](
			httpClient, baseURL+GroupServiceUpdateTransactionProcedure, opts...),
		deleteTransaction: connect.NewClient[DeleteTransactionRequest, DeleteTransactionResponse](
			httpClient, baseURL+GroupServiceDeleteTransactionProcedure, opts...),
		addPayment: connect.NewClient[AddPaymentRequest, AddPaymentResponse](
			httpClient, baseURL+GroupServiceAddPaymentProcedure, opts...),
		deletePayment: connect.NewClient[DeletePaymentRequest, DeletePaymentResponse](
			httpClient, baseURL+GroupServiceDeletePaymentProcedure, opts...),
		getGroupBalances: connect.NewClient[GetGroupBalancesRequest, GetGroupBalancesResponse](
			httpClient, baseURL+GroupServiceGetGroupBalancesProcedure, opts...),
		exportGroup: connect.NewClient[ExportGroupRequest, ExportGroupResponse](
			httpClient, baseURL+GroupServiceExportGroupProcedure, opts...),
	}
}

// CreateGroup calls splitledger.v1.GroupService.CreateGroup.
func (c *GroupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

// GetGroup calls splitledger.v1.GroupService.GetGroup.
func (c *GroupServiceClient) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

// ListGroups calls splitledger.v1.GroupService.ListGroups.
func (c *GroupServiceClient) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

// UpdateGroup calls splitledger.v1.GroupService.UpdateGroup.
func (c *GroupServiceClient) UpdateGroup(ctx context.Context, req *connect.Request[UpdateGroupRequest]) (*connect.Response[UpdateGroupResponse], error) {
	return c.updateGroup.CallUnary(ctx, req)
}

// DeleteGroup calls splitledger.v1.GroupService.DeleteGroup.
func (c *GroupServiceClient) DeleteGroup(ctx context.Context, req *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error) {
	return c.deleteGroup.CallUnary(ctx, req)
}

// AddMember calls splitledger.v1.GroupService.AddMember.
func (c *GroupServiceClient) AddMember(ctx context.Context, req *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

// UpdateMember calls splitledger.v1.GroupService.UpdateMember.
func (c *GroupServiceClient) UpdateMember(ctx context.Context, req *connect.Request[UpdateMemberRequest]) (*connect.Response[UpdateMemberResponse], error) {
	return c.updateMember.CallUnary(ctx, req)
}

// RemoveMember calls splitledger.v1.GroupService.RemoveMember.
func (c *GroupServiceClient) RemoveMember(ctx context.Context, req *connect.Request[RemoveMemberRequest]) (*connect.Response[RemoveMemberResponse], error) {
	return c.removeMember.CallUnary(ctx, req)
}

// AddTransaction calls splitledger.v1.GroupService.AddTransaction.
func (c *GroupServiceClient) AddTransaction(ctx context.Context, req *connect.Request[AddTransactionRequest]) (*connect.Response[AddTransactionResponse], error) {
	return c.addTransaction.CallUnary(ctx, req)
}

// UpdateTransaction calls splitledger.v1.GroupService.UpdateTransaction.
func (c *GroupServiceClient) UpdateTransaction(ctx context.Context, req *connect.Request[UpdateTransactionRequest]) (*connect.Response[UpdateTransactionResponse], error) {
	return c.updateTransaction.CallUnary(ctx, req)
}

// DeleteTransaction calls splitledger.v1.GroupService.DeleteTransaction.
func (c *GroupServiceClient) DeleteTransaction(ctx context.Context, req *connect.Request[DeleteTransactionRequest]) (*connect.Response[DeleteTransactionResponse], error) {
	return c.deleteTransaction.CallUnary(ctx, req)
}

// AddPayment calls splitledger.v1.GroupService.AddPayment.
func (c *GroupServiceClient) AddPayment(ctx context.Context, req *connect.Request[AddPaymentRequest]) (*connect.Response[AddPaymentResponse], error) {
	return c.addPayment.CallUnary(ctx, req)
}

// DeletePayment calls splitledger.v1.GroupService.DeletePayment.
func (c *GroupServiceClient) DeletePayment(ctx context.Context, req *connect.Request[DeletePaymentRequest]) (*connect.Response[DeletePaymentResponse], error) {
	return c.deletePayment.CallUnary(ctx, req)
}

// GetGroupBalances calls splitledger.v1.GroupService.GetGroupBalances.
func (c *GroupServiceClient) GetGroupBalances(ctx context.Context, req *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error) {
	return c.getGroupBalances.CallUnary(ctx, req)
}

// ExportGroup calls splitledger.v1.GroupService.ExportGroup.
func (c *GroupServiceClient) ExportGroup(ctx context.Context, req *connect.Request[ExportGroupRequest]) (*connect.Response[ExportGroupResponse], error) {
	return c.exportGroup.CallUnary(ctx, req)
}
