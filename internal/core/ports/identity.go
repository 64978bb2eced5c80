package ports

import (
	"context"
)

// Identity resolves a contact email to a customer account, creating a
// minimal guest account on first contact. Guest accounts take their name
// from the local part of the email and receive a random placeholder
// credential.
type Identity interface {
	ResolveCustomerByEmail(ctx context.Context, email string) (int64, error)
}
