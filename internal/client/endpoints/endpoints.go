// Package endpoints is the registry of backend routes the client calls.
package endpoints

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type Category string

const (
	CategoryAuth          Category = "auth"
	CategoryProfile       Category = "profile"
	CategoryResume        Category = "resume"
	CategoryJobs          Category = "jobs"
	CategoryMatches       Category = "matches"
	CategoryAnalytics     Category = "analytics"
	CategoryNotifications Category = "notifications"
)

// Endpoint describes one route. Path may contain {name} placeholders filled
// by Expand. Auth is false for the routes that must go out without a bearer
// token.
type Endpoint struct {
	Name     string
	Category Category
	Method   string
	Path     string
	Auth     bool
}

func (e Endpoint) String() string {
	return e.Method + " " + e.Path
}

var (
	Register = Endpoint{"register", CategoryAuth, http.MethodPost, "/auth/register", false}
	Login    = Endpoint{"login", CategoryAuth, http.MethodPost, "/auth/login", false}
	Refresh  = Endpoint{"refresh", CategoryAuth, http.MethodPost, "/auth/refresh", false}
	Logout   = Endpoint{"logout", CategoryAuth, http.MethodPost, "/auth/logout", true}

	GetProfile    = Endpoint{"profile.get", CategoryProfile, http.MethodGet, "/profile", true}
	UpdateProfile = Endpoint{"profile.update", CategoryProfile, http.MethodPut, "/profile", true}

	GetResume    = Endpoint{"resume.get", CategoryResume, http.MethodGet, "/resume", true}
	UploadResume = Endpoint{"resume.upload", CategoryResume, http.MethodPost, "/resume/upload", true}

	ListJobs   = Endpoint{"jobs.list", CategoryJobs, http.MethodGet, "/jobs", true}
	GetJob     = Endpoint{"jobs.get", CategoryJobs, http.MethodGet, "/jobs/{id}", true}
	SearchJobs = Endpoint{"jobs.search", CategoryJobs, http.MethodPost, "/jobs/search", true}
	JobMatches = Endpoint{"jobs.matches", CategoryJobs, http.MethodGet, "/jobs/matches", true}

	AnalyzeMatch         = Endpoint{"match.analyze", CategoryMatches, http.MethodPost, "/match/analyze", true}
	MatchRecommendations = Endpoint{"match.recommendations", CategoryMatches, http.MethodGet, "/match/recommendations", true}

	Dashboard = Endpoint{"analytics.dashboard", CategoryAnalytics, http.MethodGet, "/analytics/dashboard", true}
	Skills    = Endpoint{"analytics.skills", CategoryAnalytics, http.MethodGet, "/analytics/skills", true}

	ListNotifications    = Endpoint{"notifications.list", CategoryNotifications, http.MethodGet, "/notifications", true}
	UnreadCount          = Endpoint{"notifications.unread", CategoryNotifications, http.MethodGet, "/notifications/unread-count", true}
	MarkNotificationRead = Endpoint{"notifications.read", CategoryNotifications, http.MethodPut, "/notifications/{id}/read", true}
	MarkAllRead          = Endpoint{"notifications.read_all", CategoryNotifications, http.MethodPut, "/notifications/read-all", true}
	DeleteNotification   = Endpoint{"notifications.delete", CategoryNotifications, http.MethodDelete, "/notifications/{id}", true}
)

var all = []Endpoint{
	Register, Login, Refresh, Logout,
	GetProfile, UpdateProfile,
	GetResume, UploadResume,
	ListJobs, GetJob, SearchJobs, JobMatches,
	AnalyzeMatch, MatchRecommendations,
	Dashboard, Skills,
	ListNotifications, UnreadCount, MarkNotificationRead, MarkAllRead, DeleteNotification,
}

// All returns every registered endpoint.
func All() []Endpoint {
	return append([]Endpoint(nil), all...)
}

func ByCategory(c Category) []Endpoint {
	var out []Endpoint
	for _, e := range all {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

func Lookup(name string) (Endpoint, bool) {
	for _, e := range all {
		if e.Name == name {
			return e, true
		}
	}
	return Endpoint{}, false
}

// Expand fills the {name} placeholders of the path. Values are path-escaped.
// A placeholder without a value is an error.
func (e Endpoint) Expand(params map[string]string) (string, error) {
	path := e.Path
	for {
		start := strings.IndexByte(path, '{')
		if start < 0 {
			return path, nil
		}
		end := strings.IndexByte(path[start:], '}')
		if end < 0 {
			return "", fmt.Errorf("endpoint %s: unterminated placeholder", e.Name)
		}
		end += start
		name := path[start+1 : end]
		v, ok := params[name]
		if !ok || v == "" {
			return "", fmt.Errorf("endpoint %s: missing path parameter %q", e.Name, name)
		}
		path = path[:start] + url.PathEscape(v) + path[end+1:]
	}
}
