package app

type sessionKey string

const (
	SessionKeyVisitor = sessionKey("visitor")
	SessionKeyAdmin   = sessionKey("isAdmin")
)

func (s sessionKey) String() string {
	return string(s)
}
