package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/yklabs/portal/internal/portal/service"
	"github.com/yklabs/portal/pkg/httpx"
	"github.com/yklabs/portal/pkg/metricsx"
	"github.com/yklabs/portal/pkg/portalsdk"
	"github.com/yklabs/portal/pkg/slogx"
)

type EnrollHandler struct {
	CourseService *service.CourseService
	Metrics       *metricsx.Collector
}

// ServeHTTP enrolls the authenticated user in a course.
//
//	@Summary		Enroll in a course
//	@Description	Adds the course to the user's enrolled set and returns the full set. Enrolling twice is a no-op.
//	@Tags			Courses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Course id"
//	@Success		200	{object}	portalsdk.EnrollResponse
//	@Failure		400	{object}	httpx.ErrorResponse	"Malformed course id"
//	@Failure		401	{object}	httpx.ErrorResponse	"Missing token"
//	@Failure		403	{object}	httpx.ErrorResponse	"Invalid token"
//	@Failure		404	{object}	httpx.ErrorResponse	"Unknown course or account"
//	@Router			/api/courses/{id}/enroll [post].
func (h *EnrollHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusForbidden, "invalid token")
		return
	}

	courseID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	enrolled, err := h.CourseService.Enroll(ctx, userID, courseID)
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		httpx.WriteError(w, http.StatusNotFound, "course not found")
		return
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "user not found")
		return
	case err != nil:
		log.Error("enrollment failed", "user_id", userID, "course_id", courseID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.Metrics.RecordEnrollment()
	httpx.WriteJSON(w, http.StatusOK, portalsdk.EnrollResponse{
		EnrolledCourses: nonNil(enrolled),
	})
}
