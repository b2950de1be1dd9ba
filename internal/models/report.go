package models

import "time"

// Report is an abuse report filed against exactly one of a user or a post.
// Dismissal sets Resolved and retains the row for audit.
type Report struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Reason         string    `json:"reason" gorm:"size:500;not null"`
	ReporterID     uint      `json:"reporter_id" gorm:"index;not null"`
	ReportedUserID *uint     `json:"reported_user_id" gorm:"index"`
	ReportedPostID *uint     `json:"reported_post_id" gorm:"index"`
	Resolved       bool      `json:"resolved" gorm:"default:false;not null;index"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateReportRequest defines the request body for submitting a report.
// Exactly one of the two target ids must be set; the moderation service
// rejects both-or-neither.
type CreateReportRequest struct {
	Reason         string `json:"reason" validate:"required,min=1,max=500"`
	ReportedUserID *uint  `json:"reported_user_id,omitempty"`
	ReportedPostID *uint  `json:"reported_post_id,omitempty"`
}

// ReportResponse is the moderator-facing view of a report, denormalized
// with the target's owner so the dashboard can act without extra lookups.
type ReportResponse struct {
	ID                  uint      `json:"id"`
	Reason              string    `json:"reason"`
	Resolved            bool      `json:"resolved"`
	CreatedAt           time.Time `json:"created_at"`
	ReporterUsername    string    `json:"reporter_username"`
	ReportedUsername    string    `json:"reported_username,omitempty"`
	ReportedUserID      *uint     `json:"reported_user_id,omitempty"`
	ReportedPostID      *uint     `json:"reported_post_id,omitempty"`
	PostHidden          bool      `json:"post_hidden"`
	ReportedUserEnabled *bool     `json:"reported_user_enabled,omitempty"`
}
