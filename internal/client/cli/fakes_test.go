package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/jobmatch/internal/client/config"
	"github.com/dmitrijs2005/jobmatch/internal/client/events"
	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/client/notifications"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
)

type fakeAuth struct {
	regReq   models.RegisterRequest
	loginReq models.LoginRequest
	user     *models.User
	err      error

	logoutCalled bool
	logoutErr    error
	pingErr      error
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) (*models.User, error) {
	f.regReq = req
	return f.user, f.err
}
func (f *fakeAuth) Login(_ context.Context, req models.LoginRequest) (*models.User, error) {
	f.loginReq = req
	return f.user, f.err
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) Current(context.Context) (*models.User, error) { return f.user, f.err }
func (f *fakeAuth) Ping(context.Context) error                    { return f.pingErr }

type fakeProfile struct {
	profile *models.Profile
	upd     models.ProfileUpdate
	err     error
}

func (f *fakeProfile) Get(context.Context) (*models.Profile, error) { return f.profile, f.err }
func (f *fakeProfile) Update(_ context.Context, upd models.ProfileUpdate) (*models.Profile, error) {
	f.upd = upd
	return f.profile, f.err
}

type fakeResumes struct {
	list       []models.Resume
	uploadName string
	uploadData []byte
	upload     *models.ResumeUpload
	err        error
}

func (f *fakeResumes) List(context.Context) ([]models.Resume, error) { return f.list, f.err }
func (f *fakeResumes) Get(context.Context, int64) (*models.Resume, error) {
	return nil, f.err
}
func (f *fakeResumes) Upload(_ context.Context, name string, content []byte) (*models.ResumeUpload, error) {
	f.uploadName, f.uploadData = name, content
	return f.upload, f.err
}

type fakeJobs struct {
	page, perPage int
	getID         int64
	search        models.JobSearch
	list          *models.JobList
	job           *models.Job
	matches       *models.MatchList
	err           error
}

func (f *fakeJobs) List(_ context.Context, page, perPage int) (*models.JobList, error) {
	f.page, f.perPage = page, perPage
	return f.list, f.err
}
func (f *fakeJobs) Get(_ context.Context, id int64) (*models.Job, error) {
	f.getID = id
	return f.job, f.err
}
func (f *fakeJobs) Search(_ context.Context, q models.JobSearch) (*models.JobList, error) {
	f.search = q
	return f.list, f.err
}
func (f *fakeJobs) Matches(_ context.Context, page, perPage int) (*models.MatchList, error) {
	f.page, f.perPage = page, perPage
	return f.matches, f.err
}

type fakeMatches struct {
	analysis models.MatchAnalysis
	recID    int64
	match    *models.Match
	rec      *models.Recommendation
	err      error
}

func (f *fakeMatches) Analyze(_ context.Context, req models.MatchAnalysis) (*models.Match, error) {
	f.analysis = req
	return f.match, f.err
}
func (f *fakeMatches) Recommendations(_ context.Context, id int64) (*models.Recommendation, error) {
	f.recID = id
	return f.rec, f.err
}

type fakeAnalytics struct {
	dashboard models.Dashboard
	skills    *models.SkillAnalytics
	err       error
}

func (f *fakeAnalytics) Dashboard(context.Context) (models.Dashboard, error) {
	return f.dashboard, f.err
}
func (f *fakeAnalytics) Skills(context.Context) (*models.SkillAnalytics, error) {
	return f.skills, f.err
}

type fakeNotifications struct {
	list      []models.Notification
	readID    string
	allCalled bool
	err       error
}

func (f *fakeNotifications) List(context.Context) ([]models.Notification, error) {
	return f.list, f.err
}
func (f *fakeNotifications) UnreadCount(context.Context) (int, error) { return 0, f.err }
func (f *fakeNotifications) MarkRead(_ context.Context, id string) error {
	f.readID = id
	return f.err
}
func (f *fakeNotifications) MarkAllRead(context.Context) error {
	f.allCalled = true
	return f.err
}
func (f *fakeNotifications) Delete(context.Context, string) error { return f.err }

type testApp struct {
	*App
	out   *bytes.Buffer
	auth  *fakeAuth
	prof  *fakeProfile
	res   *fakeResumes
	jobs  *fakeJobs
	match *fakeMatches
	stats *fakeAnalytics
	notes *fakeNotifications
}

func newTestApp(t *testing.T, lines ...string) *testApp {
	t.Helper()
	ta := &testApp{
		out:   &bytes.Buffer{},
		auth:  &fakeAuth{},
		prof:  &fakeProfile{},
		res:   &fakeResumes{},
		jobs:  &fakeJobs{},
		match: &fakeMatches{},
		stats: &fakeAnalytics{},
		notes: &fakeNotifications{},
	}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	svc := Services{
		Auth:          ta.auth,
		Profile:       ta.prof,
		Resumes:       ta.res,
		Jobs:          ta.jobs,
		Matches:       ta.match,
		Analytics:     ta.stats,
		Notifications: ta.notes,
	}
	ta.App = NewApp(cfg, svc, notifications.NewFeed(0), nil, events.NewBus(), logging.Nop{})
	ta.App.out = ta.out
	ta.App.reader = readerFromLines(lines...)
	return ta
}

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}
