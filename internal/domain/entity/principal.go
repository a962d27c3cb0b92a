package entity

// Principal is the verified identity produced by a successful login.
// It carries everything the token issuer needs and is passed explicitly
// to subsequent calls instead of living in ambient request state.
type Principal struct {
	AccountID int64
	Username  string
	Email     string
	Roles     []string
}

// NewPrincipal builds a Principal from a verified account.
func NewPrincipal(account *Account) *Principal {
	return &Principal{
		AccountID: account.ID,
		Username:  account.Username,
		Email:     account.Email,
		Roles:     account.RoleNames(),
	}
}
