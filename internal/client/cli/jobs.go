package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/client/services"
)

func (a *App) Jobs(ctx context.Context, args []string) error {
	page, err := argPage(args)
	if err != nil {
		return a.report(err)
	}
	list, err := a.svc.Jobs.List(ctx, page, services.DefaultPerPage)
	if err != nil {
		return a.report(err)
	}
	a.printJobs(list)
	return nil
}

func (a *App) Job(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "job <id>")
	if err != nil {
		return a.report(err)
	}
	j, err := a.svc.Jobs.Get(ctx, id)
	if err != nil {
		return a.report(err)
	}
	a.println(j.Title, "@", j.Company)
	a.println("Location:", j.Location)
	if j.SalaryRange != "" {
		a.println("Salary:  ", j.SalaryRange)
	}
	a.println("Skills:  ", joinOrDash(j.Skills))
	if j.URL != "" {
		a.println(j.URL)
	}
	if j.Description != "" {
		a.println()
		a.println(j.Description)
	}
	return nil
}

// Search prompts for the filters; empty answers are skipped.
func (a *App) Search(ctx context.Context) error {
	var q models.JobSearch
	prompts := []struct {
		text string
		set  func(string) error
	}{
		{"Keywords", func(v string) error { q.Keywords = v; return nil }},
		{"Location", func(v string) error { q.Location = v; return nil }},
		{"Skills, comma separated", func(v string) error { q.Skills = splitList(v); return nil }},
		{"Minimum salary", func(v string) (err error) { q.SalaryMin, err = strconv.Atoi(v); return err }},
		{"Posted after (YYYY-MM-DD)", func(v string) error { q.PostedAfter = v; return nil }},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.text+" (optional)", a.out)
		if err != nil {
			return err
		}
		if v == "" {
			continue
		}
		if err := p.set(v); err != nil {
			return a.report(err)
		}
	}

	list, err := a.svc.Jobs.Search(ctx, q)
	if err != nil {
		return a.report(err)
	}
	a.printJobs(list)
	return nil
}

func (a *App) Matches(ctx context.Context, args []string) error {
	page, err := argPage(args)
	if err != nil {
		return a.report(err)
	}
	list, err := a.svc.Jobs.Matches(ctx, page, services.DefaultPerPage)
	if err != nil {
		return a.report(err)
	}
	a.printMatches(list)
	return nil
}
