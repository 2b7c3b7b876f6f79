package boosterdto

import "github.com/LavaJover/shvark-boost-service/internal/domain"

type CreateBoosterInput struct {
	Name            string
	Email           string
	Phone           string
	Username        string
	Password        string
	Specializations []string

	// Permissions are optional on create; the zero set denies everything.
	Permissions *domain.Permissions
}

type UpdateBoosterInput struct {
	Name            string
	Email           string
	Phone           string
	Specializations []string
	Rating          *float64
}
