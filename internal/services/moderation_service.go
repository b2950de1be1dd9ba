package services

import (
	"errors"

	"github.com/bloghive/backend/internal/apperrors"
	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/repositories"
	"gorm.io/gorm"
)

// ModerationService handles reports and the admin actions that feed the
// visibility policy: ban/unban, hide/unhide, report review. Role checks
// for who may call the admin operations sit at the HTTP boundary; the
// admin-cannot-be-banned rule lives here because it is an invariant, not
// an authorization detail.
type ModerationService struct {
	store repositories.Store
}

// NewModerationService creates a new ModerationService
func NewModerationService(store repositories.Store) *ModerationService {
	return &ModerationService{store: store}
}

// SubmitReport files a report against exactly one of a user or a post.
// Supplying both targets, or neither, is rejected outright rather than
// guessing which one the caller meant.
func (s *ModerationService) SubmitReport(reporterID uint, req models.CreateReportRequest) (*models.Report, error) {
	if (req.ReportedUserID == nil) == (req.ReportedPostID == nil) {
		return nil, &apperrors.ValidationError{Reason: "exactly one of reported_user_id and reported_post_id must be set"}
	}

	var report *models.Report
	err := s.store.InTx(func(st repositories.Store) error {
		if _, err := getUser(st, reporterID); err != nil {
			return err
		}
		if req.ReportedUserID != nil {
			if _, err := getUser(st, *req.ReportedUserID); err != nil {
				return err
			}
		}
		if req.ReportedPostID != nil {
			if _, err := getPost(st, *req.ReportedPostID); err != nil {
				return err
			}
		}

		report = &models.Report{
			Reason:         req.Reason,
			ReporterID:     reporterID,
			ReportedUserID: req.ReportedUserID,
			ReportedPostID: req.ReportedPostID,
		}
		if err := st.Reports().Create(report); err != nil {
			return apperrors.Storage("create report", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ListReports pages through all reports newest first, denormalized for
// the moderation dashboard. The handler restricts this to admins.
func (s *ModerationService) ListReports(cursor *uint, pageSize int) (*CursorPage[models.ReportResponse], error) {
	pageSize = clampPageSize(pageSize)

	reports, err := s.store.Reports().ListCursor(cursor, pageSize+1)
	if err != nil {
		return nil, apperrors.Storage("list reports", err)
	}

	responses := make([]models.ReportResponse, 0, len(reports))
	for _, report := range reports {
		resp, err := s.describeReport(report)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	page := buildCursorPage(responses, pageSize, func(r models.ReportResponse) uint { return r.ID })
	return &page, nil
}

func (s *ModerationService) describeReport(report models.Report) (*models.ReportResponse, error) {
	resp := &models.ReportResponse{
		ID:             report.ID,
		Reason:         report.Reason,
		Resolved:       report.Resolved,
		CreatedAt:      report.CreatedAt,
		ReportedUserID: report.ReportedUserID,
		ReportedPostID: report.ReportedPostID,
	}

	if reporter, err := s.store.Users().GetByID(report.ReporterID); err == nil {
		resp.ReporterUsername = reporter.Username
	}

	// Resolve the reported party: directly for user reports, through the
	// post's owner for post reports. Targets deleted since filing leave
	// those fields empty.
	var reported *models.User
	if report.ReportedUserID != nil {
		if u, err := s.store.Users().GetByID(*report.ReportedUserID); err == nil {
			reported = u
		}
	} else if report.ReportedPostID != nil {
		if post, err := s.store.Posts().GetByID(*report.ReportedPostID); err == nil {
			resp.PostHidden = post.Hidden
			if u, err := s.store.Users().GetByID(post.UserID); err == nil {
				reported = u
			}
		}
	}
	if reported != nil {
		resp.ReportedUsername = reported.Username
		enabled := reported.Enabled
		resp.ReportedUserEnabled = &enabled
	}
	return resp, nil
}

// DismissReport marks a report resolved. The row is retained for audit
// rather than deleted.
func (s *ModerationService) DismissReport(reportID uint) error {
	return s.store.InTx(func(st repositories.Store) error {
		report, err := st.Reports().GetByID(reportID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("report", reportID)
			}
			return apperrors.Storage("get report", err)
		}
		report.Resolved = true
		if err := st.Reports().Update(report); err != nil {
			return apperrors.Storage("update report", err)
		}
		return nil
	})
}

// BanUser disables a user. Admins cannot be banned.
func (s *ModerationService) BanUser(userID uint) error {
	return s.setEnabled(userID, false)
}

// UnbanUser re-enables a user.
func (s *ModerationService) UnbanUser(userID uint) error {
	return s.setEnabled(userID, true)
}

func (s *ModerationService) setEnabled(userID uint, enabled bool) error {
	return s.store.InTx(func(st repositories.Store) error {
		user, err := getUser(st, userID)
		if err != nil {
			return err
		}
		if !enabled && user.IsAdmin() {
			return &apperrors.ForbiddenError{Reason: "you cannot ban an admin"}
		}
		user.Enabled = enabled
		if err := st.Users().Update(user); err != nil {
			return apperrors.Storage("update user", err)
		}
		return nil
	})
}

// SetPostVisibility toggles the hidden flag on a post. Comments and
// likes are untouched; they become uninteractable through CanInteract
// but stay queryable.
func (s *ModerationService) SetPostVisibility(postID uint, hidden bool) error {
	return s.store.InTx(func(st repositories.Store) error {
		post, err := getPost(st, postID)
		if err != nil {
			return err
		}
		post.Hidden = hidden
		if err := st.Posts().Update(post); err != nil {
			return apperrors.Storage("update post", err)
		}
		return nil
	})
}

// DeleteUser removes a user and everything they exclusively own: posts
// (with their comments, likes and reports), comments, likes, filed and
// received reports, follow edges and notifications. Admins cannot be
// deleted.
func (s *ModerationService) DeleteUser(userID uint) error {
	return s.store.InTx(func(st repositories.Store) error {
		user, err := getUser(st, userID)
		if err != nil {
			return err
		}
		if user.IsAdmin() {
			return &apperrors.ForbiddenError{Reason: "you cannot delete an admin"}
		}

		postIDs, err := st.Posts().ListIDsByOwner(userID)
		if err != nil {
			return apperrors.Storage("list user posts", err)
		}
		for _, postID := range postIDs {
			if err := st.Comments().DeleteByPost(postID); err != nil {
				return apperrors.Storage("delete post comments", err)
			}
			if err := st.Likes().DeleteByPost(postID); err != nil {
				return apperrors.Storage("delete post likes", err)
			}
			if err := st.Reports().DeleteByPost(postID); err != nil {
				return apperrors.Storage("delete post reports", err)
			}
		}
		if err := st.Posts().DeleteByOwner(userID); err != nil {
			return apperrors.Storage("delete user posts", err)
		}
		if err := st.Comments().DeleteByOwner(userID); err != nil {
			return apperrors.Storage("delete user comments", err)
		}
		if err := st.Likes().DeleteByOwner(userID); err != nil {
			return apperrors.Storage("delete user likes", err)
		}
		if err := st.Reports().DeleteFor(userID); err != nil {
			return apperrors.Storage("delete user reports", err)
		}
		if err := st.Follows().DeleteAllFor(userID); err != nil {
			return apperrors.Storage("delete user follow edges", err)
		}
		if err := st.Notifications().DeleteFor(userID); err != nil {
			return apperrors.Storage("delete user notifications", err)
		}
		if err := st.Users().Delete(userID); err != nil {
			return apperrors.Storage("delete user", err)
		}
		return nil
	})
}

// ListUsers pages through all users newest first, with relationship
// counts for the admin overview.
func (s *ModerationService) ListUsers(cursor *uint, pageSize int) (*CursorPage[models.UserProfile], error) {
	pageSize = clampPageSize(pageSize)

	users, err := s.store.Users().ListCursor(cursor, pageSize+1)
	if err != nil {
		return nil, apperrors.Storage("list users", err)
	}

	profiles := make([]models.UserProfile, 0, len(users))
	for _, user := range users {
		profile, err := buildProfile(s.store, &user, false)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}

	page := buildCursorPage(profiles, pageSize, func(p models.UserProfile) uint { return p.ID })
	return &page, nil
}
