package api

// SplitInput is one member's raw input for a split policy.
type SplitInput struct {
	MemberID string  `json:"member_id" validate:"required"`
	Value    float64 `json:"value"`
	Included *bool   `json:"included,omitempty"`
}

// Split is one member's resolved share of a transaction.
type Split struct {
	MemberID   string   `json:"member_id"`
	Amount     float64  `json:"amount"`
	Percentage *float64 `json:"percentage,omitempty"`
	Shares     *float64 `json:"shares,omitempty"`
}

type CalculateSplitsRequest struct {
	Total  float64      `json:"total"`
	Policy string       `json:"policy" validate:"required"`
	Inputs []SplitInput `json:"inputs" validate:"dive"`
}

// CalculateSplitsResponse always carries the computed splits. Valid and
// Error report whether they are acceptable for submission.
type CalculateSplitsResponse struct {
	Splits []Split `json:"splits"`
	Valid  bool    `json:"valid"`
	Error  string  `json:"error,omitempty"`
}

type ValidateSplitsRequest struct {
	Total  float64      `json:"total"`
	Policy string       `json:"policy" validate:"required"`
	Inputs []SplitInput `json:"inputs" validate:"dive"`
}

type ValidateSplitsResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type DefaultSplitInputsRequest struct {
	MemberIDs []string `json:"member_ids"`
	Policy    string   `json:"policy" validate:"required"`
}

type DefaultSplitInputsResponse struct {
	Inputs []SplitInput `json:"inputs"`
}

type Member struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Transaction struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	PayerID     string  `json:"payer_id"`
	Policy      string  `json:"policy"`
	Splits      []Split `json:"splits"`
	Date        int64   `json:"date"`
	Category    string  `json:"category"`
	Notes       string  `json:"notes"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
}

type Payment struct {
	ID        string  `json:"id"`
	FromID    string  `json:"from_id"`
	ToID      string  `json:"to_id"`
	Amount    float64 `json:"amount"`
	Date      int64   `json:"date"`
	Notes     string  `json:"notes"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

type Group struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	OwnerID          string        `json:"owner_id"`
	Members          []Member      `json:"members"`
	Transactions     []Transaction `json:"transactions"`
	Payments         []Payment     `json:"payments"`
	CustomCategories []string      `json:"custom_categories"`
	// Categories lists default categories followed by custom ones.
	Categories []string `json:"categories"`
	CreatedAt  int64    `json:"created_at"`
	UpdatedAt  int64    `json:"updated_at"`
}

// NewMember describes a member added at group creation.
type NewMember struct {
	Name   string `json:"name" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=placeholder invited active"`
}

type CreateGroupRequest struct {
	Name             string      `json:"name" validate:"required"`
	OwnerID          string      `json:"owner_id"`
	Members          []NewMember `json:"members" validate:"dive"`
	CustomCategories []string    `json:"custom_categories"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID string `json:"group_id" validate:"required"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type ListGroupsRequest struct {
	OwnerID string `json:"owner_id"`
}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type UpdateGroupRequest struct {
	GroupID          string   `json:"group_id" validate:"required"`
	Name             string   `json:"name" validate:"required"`
	CustomCategories []string `json:"custom_categories"`
}

type UpdateGroupResponse struct {
	Group *Group `json:"group"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"group_id" validate:"required"`
}

type DeleteGroupResponse struct{}

type AddMemberRequest struct {
	GroupID string `json:"group_id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Status  string `json:"status" validate:"omitempty,oneof=placeholder invited active"`
}

type AddMemberResponse struct {
	Group  *Group  `json:"group"`
	Member *Member `json:"member"`
}

// UpdateMemberRequest renames a member and, when Status is set, changes
// its status.
type UpdateMemberRequest struct {
	GroupID  string `json:"group_id" validate:"required"`
	MemberID string `json:"member_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=placeholder invited active"`
}

type UpdateMemberResponse struct {
	Group *Group `json:"group"`
}

type RemoveMemberRequest struct {
	GroupID  string `json:"group_id" validate:"required"`
	MemberID string `json:"member_id" validate:"required"`
}

type RemoveMemberResponse struct {
	Group *Group `json:"group"`
}

// TransactionInput carries the user-entered fields of a transaction.
// Splits are computed server-side from Policy and Inputs.
type TransactionInput struct {
	Description string       `json:"description"`
	Amount      float64      `json:"amount" validate:"gt=0"`
	PayerID     string       `json:"payer_id" validate:"required"`
	Policy      string       `json:"policy" validate:"required"`
	Inputs      []SplitInput `json:"inputs" validate:"dive"`
	Date        int64        `json:"date"`
	Category    string       `json:"category"`
	Notes       string       `json:"notes"`
}

type AddTransactionRequest struct {
	GroupID     string           `json:"group_id" validate:"required"`
	Transaction TransactionInput `json:"transaction"`
}

type AddTransactionResponse struct {
	Group       *Group       `json:"group"`
	Transaction *Transaction `json:"transaction"`
}

type UpdateTransactionRequest struct {
	GroupID       string           `json:"group_id" validate:"required"`
	TransactionID string           `json:"transaction_id" validate:"required"`
	Transaction   TransactionInput `json:"transaction"`
}

type UpdateTransactionResponse struct {
	Group       *Group       `json:"group"`
	Transaction *Transaction `json:"transaction"`
}

type DeleteTransactionRequest struct {
	GroupID       string `json:"group_id" validate:"required"`
	TransactionID string `json:"transaction_id" validate:"required"`
}

type DeleteTransactionResponse struct {
	Group *Group `json:"group"`
}

type AddPaymentRequest struct {
	GroupID string  `json:"group_id" validate:"required"`
	FromID  string  `json:"from_id" validate:"required"`
	ToID    string  `json:"to_id" validate:"required,nefield=FromID"`
	Amount  float64 `json:"amount" validate:"gt=0"`
	Date    int64   `json:"date"`
	Notes   string  `json:"notes"`
}

type AddPaymentResponse struct {
	Group   *Group   `json:"group"`
	Payment *Payment `json:"payment"`
}

type DeletePaymentRequest struct {
	GroupID   string `json:"group_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
}

type DeletePaymentResponse struct {
	Group *Group `json:"group"`
}

type GetGroupBalancesRequest struct {
	GroupID string `json:"group_id" validate:"required"`
}

// MemberBalance is one member's position. Positive NetBalance means the
// member is owed money.
type MemberBalance struct {
	MemberID   string  `json:"member_id"`
	Name       string  `json:"name"`
	NetBalance float64 `json:"net_balance"`
	TotalPaid  float64 `json:"total_paid"`
	TotalShare float64 `json:"total_share"`
}

// Debt is a suggested transfer from one member to another.
type Debt struct {
	From     string  `json:"from"`
	FromName string  `json:"from_name"`
	To       string  `json:"to"`
	ToName   string  `json:"to_name"`
	Amount   float64 `json:"amount"`
}

type GetGroupBalancesResponse struct {
	Balances []MemberBalance `json:"balances"`
	Debts    []Debt          `json:"debts"`
}

type ExportGroupRequest struct {
	GroupID string `json:"group_id" validate:"required"`
}

type ExportGroupResponse struct {
	Filename string `json:"filename"`
	// Content is the xlsx workbook; base64 in JSON.
	Content []byte `json:"content"`
}
