package entity

// Caller is the verified identity behind a request.
type Caller struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
	Admin       bool   `json:"admin"`
}

// CanManage reports whether the caller may modify a shop.
func (c *Caller) CanManage(shop *Shop) bool {
	if c == nil {
		return false
	}

	return c.Admin || shop.OwnedBy(c.Email)
}

// ActsAs reports whether the caller may act under the given email.
func (c *Caller) ActsAs(email string) bool {
	if c == nil {
		return false
	}

	return c.Admin || (c.Email != "" && c.Email == email)
}
