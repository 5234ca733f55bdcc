package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/api"
)

const defaultCategory = "Other"

// buildTransaction validates user input against the group and resolves the
// splits. It returns a transaction without ID or timestamps.
func buildTransaction(g *models.Group, in api.TransactionInput) (models.Transaction, error) {
	if !(in.Amount > 0) {
		return models.Transaction{}, invalidArgument("amount must be greater than 0")
	}
	policy, err := parsePolicy(in.Policy)
	if err != nil {
		return models.Transaction{}, err
	}
	if g.Member(in.PayerID) == nil {
		return models.Transaction{}, invalidArgument("payer %s is not a member of the group", in.PayerID)
	}

	seen := make(map[string]bool, len(in.Inputs))
	for _, input := range in.Inputs {
		if g.Member(input.MemberID) == nil {
			return models.Transaction{}, invalidArgument("split member %s is not a member of the group", input.MemberID)
		}
		if seen[input.MemberID] {
			return models.Transaction{}, invalidArgument("split member %s appears more than once", input.MemberID)
		}
		seen[input.MemberID] = true
	}

	inputs := toCalcInputs(in.Inputs)
	if result := calculator.ValidateSplits(in.Amount, policy, inputs); !result.Valid {
		return models.Transaction{}, invalidArgument("%s", result.Error)
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultCategory
	}

	return models.Transaction{
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		PayerID:     in.PayerID,
		Policy:      policy,
		Splits:      calculator.CalculateSplits(in.Amount, policy, inputs),
		Date:        in.Date,
		Category:    category,
		Notes:       in.Notes,
	}, nil
}

// rememberCategory adds c to the group's custom categories if it is new.
func rememberCategory(g *models.Group, c string) {
	if !g.HasCategory(c) {
		g.CustomCategories = append(g.CustomCategories, c)
	}
}

// AddTransaction records a new expense with splits computed from the inputs.
func (s *GroupService) AddTransaction(ctx context.Context, req *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error) {
	in := req.Msg.Transaction
	slog.Info("AddTransaction request received",
		"group_id", req.Msg.GroupID,
		"amount", in.Amount,
		"payer_id", in.PayerID,
		"policy", in.Policy,
		"inputs_count", len(in.Inputs),
	)

	group, err := s.mutate(ctx, req.Msg.GroupID, func(g *models.Group) error {
		t, err := buildTransaction(g, in)
		if err != nil {
			return err
		}
		rememberCategory(g, t.Category)
		g.Transactions = append(g.Transactions, t)
		return nil
	})
	if err != nil {
		slog.Error("AddTransaction failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, err
	}

	t := group.Transactions[len(group.Transactions)-1]
	slog.Info("Transaction added", "group_id", group.ID, "transaction_id", t.ID)

	return connect.NewResponse(&api.AddTransactionResponse{
		Group:       toAPIGroup(group),
		Transaction: toAPITransaction(t),
	}), nil
}

// UpdateTransaction replaces an existing transaction, keeping its ID and
// creation time.
func (s *GroupService) UpdateTransaction(ctx context.Context, req *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error) {
	in := req.Msg.Transaction
	slog.Info("UpdateTransaction request received",
		"group_id", req.Msg.GroupID,
		"transaction_id", req.Msg.TransactionID,
		"amount", in.Amount,
		"policy", in.Policy,
	)

	var updated models.Transaction
	group, err := s.mutate(ctx, req.Msg.GroupID, func(g *models.Group) error {
		existing := g.Transaction(req.Msg.TransactionID)
		if existing == nil {
			return notFound("transaction %s not in group", req.Msg.TransactionID)
		}
		t, err := buildTransaction(g, in)
		if err != nil {
			return err
		}
		t.ID = existing.ID
		t.CreatedAt = existing.CreatedAt
		t.UpdatedAt = time.Now().Unix()
		if t.Date == 0 {
			t.Date = existing.Date
		}
		rememberCategory(g, t.Category)
		*existing = t
		updated = t
		return nil
	})
	if err != nil {
		slog.Error("UpdateTransaction failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, err
	}

	slog.Info("Transaction updated", "group_id", group.ID, "transaction_id", updated.ID)

	return connect.NewResponse(&api.UpdateTransactionResponse{
		Group:       toAPIGroup(group),
		Transaction: toAPITransaction(updated),
	}), nil
}

// DeleteTransaction removes a transaction from a group.
func (s *GroupService) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	slog.Info("DeleteTransaction request received",
		"group_id", req.Msg.GroupID,
		"transaction_id", req.Msg.TransactionID,
	)

	group, err := s.mutate(ctx, req.Msg.GroupID, func(g *models.Group) error {
		for i, t := range g.Transactions {
			if t.ID == req.Msg.TransactionID {
				g.Transactions = append(g.Transactions[:i], g.Transactions[i+1:]...)
				return nil
			}
		}
		return notFound("transaction %s not in group", req.Msg.TransactionID)
	})
	if err != nil {
		slog.Error("DeleteTransaction failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, err
	}

	slog.Info("Transaction deleted", "group_id", group.ID, "transaction_id", req.Msg.TransactionID)

	return connect.NewResponse(&api.DeleteTransactionResponse{Group: toAPIGroup(group)}), nil
}

// AddPayment records a direct transfer between two members.
func (s *GroupService) AddPayment(ctx context.Context, req *connect.Request[api.AddPaymentRequest]) (*connect.Response[api.AddPaymentResponse], error) {
	slog.Info("AddPayment request received",
		"group_id", req.Msg.GroupID,
		"from_id", req.Msg.FromID,
		"to_id", req.Msg.ToID,
		"amount", req.Msg.Amount,
	)

	group, err := s.mutate(ctx, req.Msg.GroupID, func(g *models.Group) error {
		if !(req.Msg.Amount > 0) {
			return invalidArgument("amount must be greater than 0")
		}
		if req.Msg.FromID == req.Msg.ToID {
			return invalidArgument("payment sender and receiver must differ")
		}
		if g.Member(req.Msg.FromID) == nil {
			return invalidArgument("sender %s is not a member of the group", req.Msg.FromID)
		}
		if g.Member(req.Msg.ToID) == nil {
			return invalidArgument("receiver %s is not a member of the group", req.Msg.ToID)
		}
		g.Payments = append(g.Payments, models.Payment{
			FromID: req.Msg.FromID,
			ToID:   req.Msg.ToID,
			Amount: req.Msg.Amount,
			Date:   req.Msg.Date,
			Notes:  req.Msg.Notes,
		})
		return nil
	})
	if err != nil {
		slog.Error("AddPayment failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, err
	}

	p := group.Payments[len(group.Payments)-1]
	slog.Info("Payment added", "group_id", group.ID, "payment_id", p.ID)

	return connect.NewResponse(&api.AddPaymentResponse{
		Group:   toAPIGroup(group),
		Payment: toAPIPayment(p),
	}), nil
}

// DeletePayment removes a payment from a group.
func (s *GroupService) DeletePayment(ctx context.Context, req *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error) {
	slog.Info("DeletePayment request received",
		"group_id", req.Msg.GroupID,
		"payment_id", req.Msg.PaymentID,
	)

	group, err := s.mutate(ctx, req.Msg.GroupID, func(g *models.Group) error {
		for i, p := range g.Payments {
			if p.ID == req.Msg.PaymentID {
				g.Payments = append(g.Payments[:i], g.Payments[i+1:]...)
				return nil
			}
		}
		return notFound("payment %s not in group", req.Msg.PaymentID)
	})
	if err != nil {
		slog.Error("DeletePayment failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, err
	}

	slog.Info("Payment deleted", "group_id", group.ID, "payment_id", req.Msg.PaymentID)

	return connect.NewResponse(&api.DeletePaymentResponse{Group: toAPIGroup(group)}), nil
}
