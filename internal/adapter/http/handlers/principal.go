package handlers

import (
	"net/http"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/pkg"

	"github.com/gin-gonic/gin"
)

// PrincipalKey is where the auth middleware stores the resolved caller.
const PrincipalKey = "principal"

var errMissingPrincipal = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing caller identity", http.StatusUnauthorized)

// principalFrom pulls the caller set by the identity middleware. Handlers on
// authenticated routes abort with 401 when it is absent.
func principalFrom(c *gin.Context) (entities.Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return entities.Principal{}, false
	}
	p, ok := v.(entities.Principal)
	if !ok || p.TenantID == "" {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return entities.Principal{}, false
	}
	return p, true
}
