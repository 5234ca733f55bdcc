package calculator

import (
	"math"
	"sort"

	"github.com/mmynk/splitledger/internal/models"
)

// MemberBalance summarizes one member's position in a group.
type MemberBalance struct {
	MemberID   string
	NetBalance float64 // Positive = owed money, Negative = owes money
	TotalPaid  float64 // Transactions paid plus payments sent
	TotalShare float64 // Own cost across transactions plus payments received
}

// ComputeBalances returns every member's signed net balance.
//
// Algorithm:
//   - Every member starts at 0
//   - For each transaction: payer gains amount minus their own share,
//     every other split member loses their share
//   - For each payment: sender gains amount, receiver loses amount
//
// IDs referenced by transactions or payments but missing from the member list
// still accumulate a balance.
func ComputeBalances(group *models.Group) map[string]float64 {
	balances := make(map[string]float64, len(group.Members))
	for _, m := range group.Members {
		balances[m.ID] = 0
	}

	for i := range group.Transactions {
		t := &group.Transactions[i]
		balances[t.PayerID] += t.Amount - t.ShareOf(t.PayerID)
		for _, s := range t.Splits {
			if s.MemberID == t.PayerID {
				continue
			}
			balances[s.MemberID] -= s.Amount
		}
	}

	for _, p := range group.Payments {
		balances[p.FromID] += p.Amount
		balances[p.ToID] -= p.Amount
	}

	return balances
}

// SummarizeBalances returns a MemberBalance for each member in list order.
func SummarizeBalances(group *models.Group) []MemberBalance {
	net := ComputeBalances(group)
	index := make(map[string]int, len(group.Members))
	summary := make([]MemberBalance, len(group.Members))
	for i, m := range group.Members {
		index[m.ID] = i
		summary[i] = MemberBalance{MemberID: m.ID, NetBalance: net[m.ID]}
	}

	add := func(id string, paid, share float64) {
		if i, ok := index[id]; ok {
			summary[i].TotalPaid += paid
			summary[i].TotalShare += share
		}
	}
	for _, t := range group.Transactions {
		add(t.PayerID, t.Amount, 0)
		for _, s := range t.Splits {
			add(s.MemberID, 0, s.Amount)
		}
	}
	for _, p := range group.Payments {
		add(p.FromID, p.Amount, 0)
		add(p.ToID, 0, p.Amount)
	}

	return summary
}

// ComputeDebts reduces balances to a list of suggested transfers.
//
// Members are stable-sorted by balance, creditors first. Two pointers walk
// inward from both ends: the largest creditor is paid by the largest debtor
// the smaller of what one is owed and the other owes, and whichever side
// reaches zero (within Epsilon) moves on. This yields at most n-1 transfers.
// Members missing from balances, or with non-finite balances, count as settled.
// Transfers come out debtor-last-first: each creditor is paid by the most
// indebted remaining member before the next.
func ComputeDebts(balances map[string]float64, members []models.Member) []models.Debt {
	type entry struct {
		id      string
		balance float64
	}
	sorted := make([]entry, len(members))
	for i, m := range members {
		sorted[i] = entry{id: m.ID, balance: finite(balances[m.ID])}
	}
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].balance > sorted[b].balance
	})

	var debts []models.Debt
	i, j := 0, len(sorted)-1
	for i < j {
		creditor, debtor := &sorted[i], &sorted[j]

		if !IsZero(creditor.balance) && !IsZero(debtor.balance) {
			// Balances that do not sum to zero can leave only creditors or
			// only debtors between the pointers.
			if creditor.balance < 0 || debtor.balance > 0 {
				break
			}
			amount := math.Min(creditor.balance, math.Abs(debtor.balance))
			debts = append(debts, models.Debt{
				From:   debtor.id,
				To:     creditor.id,
				Amount: amount,
			})
			creditor.balance -= amount
			debtor.balance += amount
		}

		if IsZero(creditor.balance) {
			i++
		}
		if IsZero(debtor.balance) {
			j--
		}
	}

	return debts
}
