package domain

// Machine is a registered wake-on-LAN target. The MAC address is the
// unique identifier; machines are added and deleted, never edited.
type Machine struct {
	Name string `json:"name"`
	MAC  string `json:"mac"`
}
