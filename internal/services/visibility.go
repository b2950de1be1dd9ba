// Package services implements the social engine's core rules: who sees
// what, who may interact with what, and which actions fan out into
// notifications. Handlers stay thin; every invariant lives here, and every
// multi-entity mutation runs inside one Store transaction.
package services

import "github.com/bloghive/backend/internal/models"

// IsVisible decides whether a post is included in reads for the viewer.
// Admins see everything; everyone else sees only non-hidden posts. Pure
// and total on purpose: moderation state and role are the only inputs.
func IsVisible(post *models.Post, viewerRole string, viewerID uint) bool {
	if viewerRole == models.RoleAdmin {
		return true
	}
	return !post.Hidden
}

// CanInteract gates likes and comments. Hidden posts are locked for
// everyone, owner and admin included.
func CanInteract(post *models.Post) bool {
	return !post.Hidden
}
