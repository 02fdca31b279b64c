package domain

// Config is the aggregate root persisted as a single JSON document.
// Every mutation loads the whole document, applies one change and
// rewrites it. The persisted keys ("pcs", "users") are a compatibility
// contract with existing config files.
type Config struct {
	Machines []Machine `json:"pcs"`
	Users    []User    `json:"users"`
}

// NewConfig returns an empty configuration with non-nil slices so a
// fresh document serializes as {"pcs":[],"users":[]}.
func NewConfig() *Config {
	return &Config{Machines: []Machine{}, Users: []User{}}
}

// FindUser returns the user with the given username, or nil.
func (c *Config) FindUser(username string) *User {
	for i := range c.Users {
		if c.Users[i].Username == username {
			return &c.Users[i]
		}
	}
	return nil
}

// FindMachine returns the machine with the given MAC, or nil.
func (c *Config) FindMachine(mac string) *Machine {
	for i := range c.Machines {
		if c.Machines[i].MAC == mac {
			return &c.Machines[i]
		}
	}
	return nil
}

// RemoveUser deletes the named user, reporting whether it existed.
func (c *Config) RemoveUser(username string) bool {
	for i := range c.Users {
		if c.Users[i].Username == username {
			c.Users = append(c.Users[:i], c.Users[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveMachine deletes the machine with the given MAC and prunes that
// MAC from every user's allowed set in the same pass. This is the one
// place referential integrity between users and machines is enforced.
func (c *Config) RemoveMachine(mac string) bool {
	found := false
	for i := range c.Machines {
		if c.Machines[i].MAC == mac {
			c.Machines = append(c.Machines[:i], c.Machines[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for i := range c.Users {
		macs := c.Users[i].AllowedMACs
		kept := macs[:0]
		for _, m := range macs {
			if m != mac {
				kept = append(kept, m)
			}
		}
		c.Users[i].AllowedMACs = kept
	}
	return true
}

// VisibleMachines returns the machines the user may see, preserving
// document order.
func (c *Config) VisibleMachines(u *User) []Machine {
	if u.IsAdmin() {
		return append([]Machine(nil), c.Machines...)
	}
	visible := make([]Machine, 0, len(c.Machines))
	for _, m := range c.Machines {
		if u.MayView(m.MAC) {
			visible = append(visible, m)
		}
	}
	return visible
}
