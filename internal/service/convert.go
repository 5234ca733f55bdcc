package service

import (
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/api"
)

func toCalcInputs(inputs []api.SplitInput) []calculator.SplitInput {
	out := make([]calculator.SplitInput, len(inputs))
	for i, in := range inputs {
		out[i] = calculator.SplitInput{MemberID: in.MemberID, Value: in.Value, Included: in.Included}
	}
	return out
}

func toAPIInputs(inputs []calculator.SplitInput) []api.SplitInput {
	out := make([]api.SplitInput, len(inputs))
	for i, in := range inputs {
		out[i] = api.SplitInput{MemberID: in.MemberID, Value: in.Value, Included: in.Included}
	}
	return out
}

func toAPISplits(splits []models.Split) []api.Split {
	out := make([]api.Split, len(splits))
	for i, s := range splits {
		out[i] = api.Split{
			MemberID:   s.MemberID,
			Amount:     s.Amount,
			Percentage: s.Percentage,
			Shares:     s.Shares,
		}
	}
	return out
}

func toAPIMember(m models.Member) *api.Member {
	return &api.Member{ID: m.ID, Name: m.Name, Status: string(m.Status)}
}

func toAPITransaction(t models.Transaction) *api.Transaction {
	return &api.Transaction{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		PayerID:     t.PayerID,
		Policy:      string(t.Policy),
		Splits:      toAPISplits(t.Splits),
		Date:        t.Date,
		Category:    t.Category,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toAPIPayment(p models.Payment) *api.Payment {
	return &api.Payment{
		ID:        p.ID,
		FromID:    p.FromID,
		ToID:      p.ToID,
		Amount:    p.Amount,
		Date:      p.Date,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toAPIGroup(g *models.Group) *api.Group {
	out := &api.Group{
		ID:               g.ID,
		Name:             g.Name,
		OwnerID:          g.OwnerID,
		Members:          make([]api.Member, len(g.Members)),
		Transactions:     make([]api.Transaction, len(g.Transactions)),
		Payments:         make([]api.Payment, len(g.Payments)),
		CustomCategories: append([]string{}, g.CustomCategories...),
		Categories:       g.Categories(),
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
	for i, m := range g.Members {
		out.Members[i] = *toAPIMember(m)
	}
	for i, t := range g.Transactions {
		out.Transactions[i] = *toAPITransaction(t)
	}
	for i, p := range g.Payments {
		out.Payments[i] = *toAPIPayment(p)
	}
	return out
}
