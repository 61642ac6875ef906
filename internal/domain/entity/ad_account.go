package entity

// DirectAccessRole is the role shown for accounts not linked to a business.
const DirectAccessRole = "Direct Access"

// UnknownAccountStatus is the label used for status codes outside the known table.
const UnknownAccountStatus = "Unknown"

var accountStatusLabels = map[int]string{
	1:   "Active",
	2:   "Disabled",
	3:   "Unsettled",
	7:   "Pending Risk Review",
	8:   "Pending Settlement",
	9:   "In Grace Period",
	100: "Pending Closure",
	101: "Closed",
	201: "Any Active",
	202: "Any Closed",
}

// AccountStatusLabel maps a Meta account_status code to its display label.
func AccountStatusLabel(code int) string {
	if label, ok := accountStatusLabels[code]; ok {
		return label
	}

	return UnknownAccountStatus
}

// AdAccount is the normalized view of one Meta ad account.
// Monetary values are kept as the strings the platform returns.
type AdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	Currency      string `json:"currency"`
	Timezone      string `json:"timezone"`
	Role          string `json:"role"`
	SpendCap      string `json:"spend_cap"`
	AmountSpent   string `json:"amount_spent"`
	Balance       string `json:"balance"`
	Owner         string `json:"owner"`
	FundingSource string `json:"funding_source"`
	BusinessName  string `json:"business_name"`
}
