package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an account in the console. Password holds either a bcrypt
// hash (accounts created through the API) or a legacy cleartext value
// from a hand-edited config file; the auth service handles both.
type User struct {
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Role        string   `json:"role"`
	AllowedMACs []string `json:"allowed_macs"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// MayView reports whether the user is allowed to see the machine with
// the given MAC. Admins see everything.
func (u *User) MayView(mac string) bool {
	if u.IsAdmin() {
		return true
	}
	for _, m := range u.AllowedMACs {
		if m == mac {
			return true
		}
	}
	return false
}

// MayWake reports whether the user is allowed to wake the machine with
// the given MAC. The rule is identical to visibility.
func (u *User) MayWake(mac string) bool {
	return u.MayView(mac)
}
