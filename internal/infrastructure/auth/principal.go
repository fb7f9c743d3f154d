package auth

import "github.com/ramabhadrarao/opencart-api/internal/domain/entities"

// Principal is a resolved identity: exactly one of Customer or Admin is
// set, according to Type.
type Principal struct {
	ID       int
	Type     string
	Customer *entities.Customer
	Admin    *entities.AdminUser
}

// DisplayName devolve um rótulo apresentável para logs e respostas.
func (p *Principal) DisplayName() string {
	switch {
	case p.Customer != nil:
		return p.Customer.Firstname + " " + p.Customer.Lastname
	case p.Admin != nil:
		return p.Admin.Username
	default:
		return ""
	}
}
