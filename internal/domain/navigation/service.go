package navigation

import (
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
)

// ResolveInput carries everything route resolution depends on. Resolution is
// a pure function of this input: same input, same output.
type ResolveInput struct {
	Roles        session.RoleSet
	Enterprise   bool
	LoginMethod  session.LoginMethod
	ESignEnabled bool
}

// Service resolves the navigation a user actually sees. Resolution never
// fails: missing roles or an undefined login method degrade to an empty or
// partial list.
type Service interface {
	Resolve(input ResolveInput) []ResolvedRoute
}
