package entity

// Permission is an ordinal access tier. Higher values grant more access.
type Permission int

const (
	// PermissionVisitor is the level of anonymous callers.
	PermissionVisitor Permission = iota

	// PermissionUser is granted to every registered account.
	PermissionUser

	// PermissionAdmin can read every note.
	PermissionAdmin
)

// AtLeast reports whether p grants the access required by 'required'.
func (p Permission) AtLeast(required Permission) bool {
	return p >= required
}

// Valid checks that p is one of the known tiers.
func (p Permission) Valid() bool {
	return p >= PermissionVisitor && p <= PermissionAdmin
}

func (p Permission) String() string {
	switch p {
	case PermissionVisitor:
		return "visitor"
	case PermissionUser:
		return "user"
	case PermissionAdmin:
		return "admin"
	default:
		return "unknown"
	}
}
