package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yklabs/portal/internal/portal/domain"
	"github.com/yklabs/portal/internal/portal/service"
	"github.com/yklabs/portal/internal/portal/store"
	"github.com/yklabs/portal/internal/portal/store/drivers/memory"
)

func seededStore(t *testing.T) store.Store {
	t.Helper()
	st := memory.NewStore()
	require.NoError(t, st.Courses().SeedCourses(context.Background(), domain.SeedCourses()))
	return st
}

func createUser(t *testing.T, st store.Store, email string) domain.User {
	t.Helper()
	user, err := st.Users().CreateUser(context.Background(), domain.User{
		Email:            email,
		PasswordDigest:   "digest",
		Name:             "Test User",
		Role:             domain.RoleUser,
		RegistrationDate: time.Now().UTC(),
		LearningStats:    domain.NewLearningStats(),
	})
	require.NoError(t, err)
	return user
}

func TestCourseService_List(t *testing.T) {
	ctx := context.Background()
	svc := &service.CourseService{Store: seededStore(t)}

	courses, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 3)
	require.Equal(t, int64(1), courses[0].ID)
	require.NotEmpty(t, courses[0].Materials)
}

func TestCourseService_Enroll(t *testing.T) {
	ctx := context.Background()
	st := seededStore(t)
	svc := &service.CourseService{Store: st}
	user := createUser(t, st, "learner@example.com")

	enrolled, err := svc.Enroll(ctx, user.ID, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{2}, enrolled)

	// Enrolling again changes nothing.
	enrolled, err = svc.Enroll(ctx, user.ID, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{2}, enrolled)

	enrolled, err = svc.Enroll(ctx, user.ID, 1)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{1, 2}, enrolled)
}

func TestCourseService_EnrollNotFound(t *testing.T) {
	ctx := context.Background()
	st := seededStore(t)
	svc := &service.CourseService{Store: st}
	user := createUser(t, st, "learner@example.com")

	_, err := svc.Enroll(ctx, user.ID, 999)
	require.ErrorIs(t, err, service.ErrCourseNotFound)

	_, err = svc.Enroll(ctx, 999, 1)
	require.ErrorIs(t, err, service.ErrUserNotFound)
}
