package dto

// AccountWithTransactions pairs an account with its most recent transactions.
type AccountWithTransactions struct {
	Account      AccountResponse       `json:"account"`
	Transactions []TransactionResponse `json:"transactions"`
}

// UserViewResponse bundles a user's identity with each of their accounts and
// that account's most recent transactions. Identity fields are taken from the
// first account matching the queried phone number.
type UserViewResponse struct {
	UserID          string                    `json:"userId"`
	UserDNI         string                    `json:"userDni"`
	UserPhoneNumber string                    `json:"userPhoneNumber"`
	Accounts        []AccountWithTransactions `json:"accounts"`
}

// UserViewParams defines query parameters for the aggregate user view.
type UserViewParams struct {
	Limit int `form:"limit,default=10"`
}
