package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is carried in the access token. Payment gateways call back with an
// operator token; cursor, stock and rollback are admin only.
type Role string

const (
	RoleBuyer    Role = "buyer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleLevels = map[Role]int{
	RoleBuyer:    1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r grants everything min grants. Unknown roles grant nothing.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleLevels[r]
	want, wantOK := roleLevels[min]
	return ok && wantOK && have >= want
}

func NewRole(s string) (Role, error) {
	if role := Role(s); role.IsValid() {
		return role, nil
	}
	return "", ErrInvalidRole
}
