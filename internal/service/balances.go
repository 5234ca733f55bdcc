package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/export"
	"github.com/mmynk/splitledger/pkg/api"
)

// GetGroupBalances computes every member's net position and the suggested
// settlement transfers. Nothing is persisted.
func (s *GroupService) GetGroupBalances(ctx context.Context, req *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error) {
	slog.Info("GetGroupBalances request received", "group_id", req.Msg.GroupID)

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("GetGroupBalances failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, storeError(err)
	}

	names := make(map[string]string, len(group.Members))
	for _, m := range group.Members {
		names[m.ID] = m.Name
	}

	summary := calculator.SummarizeBalances(group)
	balances := make([]api.MemberBalance, len(summary))
	for i, b := range summary {
		balances[i] = api.MemberBalance{
			MemberID:   b.MemberID,
			Name:       names[b.MemberID],
			NetBalance: b.NetBalance,
			TotalPaid:  b.TotalPaid,
			TotalShare: b.TotalShare,
		}
	}

	computed := calculator.ComputeDebts(calculator.ComputeBalances(group), group.Members)
	debts := make([]api.Debt, len(computed))
	for i, d := range computed {
		debts[i] = api.Debt{
			From:     d.From,
			FromName: names[d.From],
			To:       d.To,
			ToName:   names[d.To],
			Amount:   d.Amount,
		}
	}

	slog.Info("GetGroupBalances successful",
		"group_id", group.ID,
		"members_count", len(balances),
		"debts_count", len(debts),
	)

	return connect.NewResponse(&api.GetGroupBalancesResponse{
		Balances: balances,
		Debts:    debts,
	}), nil
}

// ExportGroup renders the group ledger as an xlsx workbook.
func (s *GroupService) ExportGroup(ctx context.Context, req *connect.Request[api.ExportGroupRequest]) (*connect.Response[api.ExportGroupResponse], error) {
	slog.Info("ExportGroup request received", "group_id", req.Msg.GroupID)

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("ExportGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, storeError(err)
	}

	content, filename, err := export.Write(group, time.Now())
	if err != nil {
		slog.Error("ExportGroup failed", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to export group: %w", err))
	}

	slog.Info("ExportGroup successful", "group_id", group.ID, "filename", filename, "bytes", len(content))

	return connect.NewResponse(&api.ExportGroupResponse{
		Filename: filename,
		Content:  content,
	}), nil
}
