package portal_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yklabs/portal/pkg/portalsdk"
)

func TestE2E_CourseCatalogue(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)

	courses, err := client.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 3)
	for _, c := range courses {
		require.NotEmpty(t, c.Title)
		require.NotZero(t, c.Lessons)
	}
}

func TestE2E_EnrollIdempotent(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := portalsdk.NewSDKClient(baseURL)
	session := registerFreshUser(t, client, "enroll")

	enrolled, err := session.Enroll(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []int64{1}, enrolled)

	// Same request again leaves exactly one occurrence.
	enrolled, err = session.Enroll(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []int64{1}, enrolled)

	profile, err := session.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{1}, profile.LearningStats.EnrolledCourses)
}

func TestE2E_EnrollUnknownCourse(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	session := registerFreshUser(t, client, "missing")

	_, err := session.Enroll(context.Background(), 999)
	assertAPIError(t, err, http.StatusNotFound, "Unknown course should 404")
}
