package auth

import "influmatch_backend/internal/models"

// IsAdmin reports whether the token belongs to a platform administrator.
func IsAdmin(claims *Claims) bool {
	return claims.Role == models.UserRoleAdmin
}

// HasRole reports whether the token matches any of the given roles.
func HasRole(claims *Claims, roles ...models.UserRole) bool {
	for _, r := range roles {
		if claims.Role == r {
			return true
		}
	}
	return false
}
