package cli

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/dmitrijs2005/jobmatch/internal/client/client"
	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Show(t *testing.T) {
	a := newTestApp(t)
	a.prof.profile = &models.Profile{Title: "Backend engineer", Skills: []string{"go", "sql"}}

	require.NoError(t, a.Profile(context.Background()))
	assert.Contains(t, a.out.String(), "Backend engineer")
	assert.Contains(t, a.out.String(), "go, sql")
}

func TestSetProfile_EmptyAnswersKeepFields(t *testing.T) {
	a := newTestApp(t, "Staff engineer", "", "senior", "go, k8s ,")
	a.prof.profile = &models.Profile{}

	require.NoError(t, a.SetProfile(context.Background()))

	upd := a.prof.upd
	require.NotNil(t, upd.Title)
	assert.Equal(t, "Staff engineer", *upd.Title)
	assert.Nil(t, upd.Location)
	require.NotNil(t, upd.ExperienceLevel)
	assert.Equal(t, "senior", *upd.ExperienceLevel)
	assert.Equal(t, []string{"go", "k8s"}, upd.Skills)
}

func TestUpload(t *testing.T) {
	orig := readFile
	t.Cleanup(func() { readFile = orig })
	readFile = func(name string) ([]byte, error) {
		if name == "/tmp/cv.pdf" {
			return []byte("%PDF"), nil
		}
		return nil, os.ErrNotExist
	}

	a := newTestApp(t)
	a.res.upload = &models.ResumeUpload{ID: 9, Filename: "cv.pdf", DetectedSkills: []string{"go"}}

	require.NoError(t, a.Upload(context.Background(), []string{"/tmp/cv.pdf"}))
	assert.Equal(t, "cv.pdf", a.res.uploadName)
	assert.Equal(t, []byte("%PDF"), a.res.uploadData)
	assert.Contains(t, a.out.String(), "Uploaded cv.pdf (id 9)")

	require.Error(t, a.Upload(context.Background(), []string{"/tmp/missing.pdf"}))
	require.Error(t, a.Upload(context.Background(), nil))
}

func TestJobs_PageArgument(t *testing.T) {
	a := newTestApp(t)
	a.jobs.list = &models.JobList{Jobs: []models.Job{{ID: 3, Title: "Go dev", Company: "Acme"}}, Page: 2, TotalPages: 4, Total: 61}

	require.NoError(t, a.Jobs(context.Background(), []string{"2"}))
	assert.Equal(t, 2, a.jobs.page)
	assert.Equal(t, services.DefaultPerPage, a.jobs.perPage)
	assert.Contains(t, a.out.String(), "Go dev")
	assert.Contains(t, a.out.String(), "page 2 of 4, 61 total")

	require.Error(t, a.Jobs(context.Background(), []string{"zero"}))
}

func TestJob_RequiresID(t *testing.T) {
	a := newTestApp(t)
	a.jobs.job = &models.Job{ID: 5, Title: "SRE", Company: "Initech", Description: "pager duty"}

	require.Error(t, a.Job(context.Background(), nil))
	require.Error(t, a.Job(context.Background(), []string{"-1"}))

	require.NoError(t, a.Job(context.Background(), []string{"5"}))
	assert.Equal(t, int64(5), a.jobs.getID)
	assert.Contains(t, a.out.String(), "SRE @ Initech")
}

func TestSearch_CollectsFilters(t *testing.T) {
	a := newTestApp(t, "golang", "", "go, grpc", "90000", "2024-01-31")
	a.jobs.list = &models.JobList{}

	require.NoError(t, a.Search(context.Background()))
	assert.Equal(t, models.JobSearch{
		Keywords:    "golang",
		Skills:      []string{"go", "grpc"},
		SalaryMin:   90000,
		PostedAfter: "2024-01-31",
	}, a.jobs.search)
	assert.Contains(t, a.out.String(), "No jobs found")
}

func TestSearch_BadSalary(t *testing.T) {
	a := newTestApp(t, "", "", "", "lots", "")
	require.Error(t, a.Search(context.Background()))
}

func TestMatchesAnalyzeRecommend(t *testing.T) {
	a := newTestApp(t)
	a.jobs.matches = &models.MatchList{Matches: []models.Match{{ID: 1, JobID: 4, Score: 0.82}}, Page: 1, TotalPages: 1, Total: 1}
	a.match.match = &models.Match{ID: 7, Score: 0.5}
	a.match.rec = &models.Recommendation{MatchID: 7, Score: 0.5}

	require.NoError(t, a.Matches(context.Background(), nil))
	assert.Equal(t, 1, a.jobs.page)
	assert.Contains(t, a.out.String(), "82%")

	require.Error(t, a.Analyze(context.Background(), []string{"4"}))
	require.NoError(t, a.Analyze(context.Background(), []string{"4", "2"}))
	assert.Equal(t, models.MatchAnalysis{JobID: 4, ResumeID: 2}, a.match.analysis)

	require.NoError(t, a.Recommend(context.Background(), []string{"7"}))
	assert.Equal(t, int64(7), a.match.recID)
}

func TestDashboard(t *testing.T) {
	a := newTestApp(t)
	a.stats.dashboard = models.Dashboard{"total_matches": 3}
	a.stats.skills = &models.SkillAnalytics{Skills: []models.SkillStat{{Skill: "go", Count: 12}}}

	require.NoError(t, a.Dashboard(context.Background()))
	assert.Contains(t, a.out.String(), `"total_matches": 3`)
	assert.Contains(t, a.out.String(), "go")
}

func TestNotifications_RefreshesFeed(t *testing.T) {
	a := newTestApp(t)
	a.notes.list = []models.Notification{{ID: "a", Title: "New match"}, {ID: "b", Title: "Old", Read: true}}

	require.NoError(t, a.Notifications(context.Background()))
	assert.Len(t, a.feed.Items(), 2)
	assert.Equal(t, 1, a.feed.UnreadCount())
	assert.Contains(t, a.out.String(), "New match")
}

func TestNotifications_OfflineShowsCache(t *testing.T) {
	a := newTestApp(t)
	a.feed.Add(models.Notification{ID: "c", Title: "Cached"})
	a.notes.err = client.ErrUnavailable

	require.NoError(t, a.Notifications(context.Background()))
	assert.Contains(t, a.out.String(), "showing cached notifications")
	assert.Contains(t, a.out.String(), "Cached")
}

func TestRead(t *testing.T) {
	a := newTestApp(t)
	a.feed.Replace([]models.Notification{{ID: "a"}, {ID: "b"}})

	require.NoError(t, a.Read(context.Background(), []string{"a"}))
	assert.Equal(t, "a", a.notes.readID)
	assert.Equal(t, 1, a.feed.UnreadCount())

	require.NoError(t, a.Read(context.Background(), []string{"all"}))
	assert.True(t, a.notes.allCalled)
	assert.Zero(t, a.feed.UnreadCount())

	require.Error(t, a.Read(context.Background(), nil))

	a.notes.err = errors.New("nope")
	a.feed.Add(models.Notification{ID: "c"})
	require.Error(t, a.Read(context.Background(), []string{"c"}))
	assert.Equal(t, 1, a.feed.UnreadCount(), "local state is kept when the server refuses")
}
