package http

import (
	"net/http"

	"github.com/yklabs/portal/internal/portal/service"
	"github.com/yklabs/portal/pkg/httpx"
	"github.com/yklabs/portal/pkg/portalsdk"
	"github.com/yklabs/portal/pkg/slogx"
)

type CoursesHandler struct {
	CourseService *service.CourseService
}

// ServeHTTP lists the course catalogue.
//
//	@Summary		List courses
//	@Description	Returns every course with its materials. No authentication required.
//	@Tags			Courses
//	@Produce		json
//	@Success		200	{array}		portalsdk.Course
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Router			/api/courses [get].
func (h *CoursesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	courses, err := h.CourseService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("course listing failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]portalsdk.Course, 0, len(courses))
	for _, c := range courses {
		out = append(out, toSDKCourse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
