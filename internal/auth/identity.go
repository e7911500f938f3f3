// Package auth carries the authenticated caller through a request.
package auth

import "github.com/gin-gonic/gin"

// Identity is resolved once per request. A nil *Identity is an anonymous caller.
type Identity struct {
	UserID     uint
	Username   string
	Email      string
	IsStaff    bool
	Subscribed bool
}

// HasPremium reports whether the caller may see premium content.
func (i *Identity) HasPremium() bool {
	return i != nil && i.Subscribed
}

func (i *Identity) Authenticated() bool {
	return i != nil && i.UserID != 0
}

const identityKey = "identity"

func SetIdentity(ctx *gin.Context, id *Identity) {
	ctx.Set(identityKey, id)
}

// FromContext returns the identity stored by the middleware, or nil.
func FromContext(ctx *gin.Context) *Identity {
	v, ok := ctx.Get(identityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*Identity)
	return id
}
