package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/jobmatch/internal/client/models"
)

// table writes tab separated rows aligned in columns.
func (a *App) table(header string, rows []string) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	for _, r := range rows {
		fmt.Fprintln(w, r)
	}
	_ = w.Flush()
}

func (a *App) printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		a.println(v)
		return
	}
	a.println(string(b))
}

func (a *App) printJobs(list *models.JobList) {
	if len(list.Jobs) == 0 {
		a.println("No jobs found")
		return
	}
	rows := make([]string, 0, len(list.Jobs))
	for _, j := range list.Jobs {
		rows = append(rows, fmt.Sprintf("%d\t%s\t%s\t%s", j.ID, j.Title, j.Company, j.Location))
	}
	a.table("ID\tTITLE\tCOMPANY\tLOCATION", rows)
	a.println(fmt.Sprintf("page %d of %d, %d total", list.Page, list.TotalPages, list.Total))
}

func (a *App) printMatches(list *models.MatchList) {
	if len(list.Matches) == 0 {
		a.println("No matches yet")
		return
	}
	rows := make([]string, 0, len(list.Matches))
	for _, m := range list.Matches {
		title := fmt.Sprintf("job %d", m.JobID)
		if m.Job != nil {
			title = m.Job.Title + " @ " + m.Job.Company
		}
		rows = append(rows, fmt.Sprintf("%d\t%.0f%%\t%s", m.ID, m.Score*100, title))
	}
	a.table("ID\tSCORE\tJOB", rows)
	a.println(fmt.Sprintf("page %d of %d, %d total", list.Page, list.TotalPages, list.Total))
}

func (a *App) printNotifications(list []models.Notification) {
	if len(list) == 0 {
		a.println("No notifications")
		return
	}
	rows := make([]string, 0, len(list))
	for _, n := range list {
		mark := " "
		if !n.Read {
			mark = "*"
		}
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s", mark, n.ID, n.Title, n.Message))
	}
	a.table(" \tID\tTITLE\tMESSAGE", rows)
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
