package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderOrganizationID = "X-Organization-ID"
	organizationKey      = "organization_id"
)

// Organization stores the caller's organization, taken from the
// X-Organization-ID header set by the upstream auth proxy. Requests without
// it are left unscoped.
func Organization() gin.HandlerFunc {
	return func(c *gin.Context) {
		if org := strings.TrimSpace(c.GetHeader(HeaderOrganizationID)); org != "" {
			c.Set(organizationKey, org)
		}
		c.Next()
	}
}

// OrganizationID returns the organization stored by Organization, or "".
func OrganizationID(c *gin.Context) string {
	return c.GetString(organizationKey)
}
