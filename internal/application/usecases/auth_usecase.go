package usecases

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/domain/repositories"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/auth"
)

// TypeAny accepts either principal type on Resolve.
const TypeAny = ""

type AuthUseCase struct {
	customers repositories.ICustomerRepository
	admins    repositories.IAdminRepository
	tokens    *auth.TokenManager
}

func NewAuthUseCase(customers repositories.ICustomerRepository, admins repositories.IAdminRepository, tokens *auth.TokenManager) *AuthUseCase {
	return &AuthUseCase{
		customers: customers,
		admins:    admins,
		tokens:    tokens,
	}
}

// LoginCustomer verifies the legacy password hash and issues a customer
// token. Unknown email and wrong password are indistinguishable.
func (uc *AuthUseCase) LoginCustomer(ctx context.Context, email, password string) (string, error) {
	customer, err := uc.customers.FindCustomerByEmail(ctx, email)
	if err != nil {
		return "", auth.ErrUnauthenticated
	}
	if !auth.VerifyPassword(password, customer.Password, customer.Salt) {
		return "", auth.ErrUnauthenticated
	}
	return uc.tokens.Issue(customer.CustomerID, entities.UserTypeCustomer, auth.Profile{
		Name:  customer.Firstname + " " + customer.Lastname,
		Email: customer.Email,
	})
}

// LoginAdmin verifies an oc_user credential and issues an admin token.
func (uc *AuthUseCase) LoginAdmin(ctx context.Context, username, password string) (string, error) {
	admin, err := uc.admins.FindAdminByUsername(ctx, username)
	if err != nil {
		return "", auth.ErrUnauthenticated
	}
	if !auth.VerifyPassword(password, admin.Password, admin.Salt) {
		return "", auth.ErrUnauthenticated
	}
	return uc.tokens.Issue(admin.UserID, entities.UserTypeAdmin, auth.Profile{
		Username: admin.Username,
		Email:    admin.Email,
		IsAdmin:  true,
	})
}

// Resolve validates a bearer token and loads the principal it names.
// requiredType restricts the accepted principal type; TypeAny accepts
// either. Every failure mode — bad signature, expired token, missing
// subject, type mismatch, principal deleted — collapses to
// ErrUnauthenticated so responses never leak whether an account exists.
func (uc *AuthUseCase) Resolve(ctx context.Context, token, requiredType string) (*auth.Principal, error) {
	claims, err := uc.tokens.Parse(token)
	if err != nil {
		return nil, auth.ErrUnauthenticated
	}

	id, err := claims.PrincipalID()
	if err != nil {
		return nil, auth.ErrUnauthenticated
	}

	if requiredType != TypeAny && claims.UserType != requiredType {
		return nil, auth.ErrUnauthenticated
	}

	switch claims.UserType {
	case entities.UserTypeCustomer:
		customer, err := uc.customers.FindCustomerByID(ctx, id)
		if err != nil {
			return nil, auth.ErrUnauthenticated
		}
		return &auth.Principal{ID: id, Type: entities.UserTypeCustomer, Customer: customer}, nil
	case entities.UserTypeAdmin:
		admin, err := uc.admins.FindAdminByID(ctx, id)
		if err != nil {
			return nil, auth.ErrUnauthenticated
		}
		return &auth.Principal{ID: id, Type: entities.UserTypeAdmin, Admin: admin}, nil
	default:
		return nil, auth.ErrUnauthenticated
	}
}

// ChangePassword re-hashes with a fresh salt under the same legacy
// scheme (kept for compatibility with the storefront's own login).
func (uc *AuthUseCase) ChangePassword(ctx context.Context, customerID int, newPassword string) error {
	salt, err := auth.GenerateSalt()
	if err != nil {
		return err
	}
	return uc.customers.UpdatePassword(ctx, customerID, auth.HashPassword(newPassword, salt), salt)
}
