package entity

// AdminPassword is one entry of the valid admin password set. IDs are
// assigned by the upstream auth service.
type AdminPassword struct {
	ID       int64  `json:"id"`
	Password string `json:"password"`
}

// AdminSession is the per-browsing-session authentication state held by
// the session store. The zero value is an anonymous session.
type AdminSession struct {
	IsAdmin   bool   `json:"isAdmin"`
	AdminName string `json:"adminName,omitempty"`
}
