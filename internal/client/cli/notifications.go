package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/jobmatch/internal/client/client"
)

// Notifications refreshes the feed from the server. When the server is
// unreachable the locally buffered feed is shown instead.
func (a *App) Notifications(ctx context.Context) error {
	list, err := a.svc.Notifications.List(ctx)
	switch {
	case errors.Is(err, client.ErrUnavailable):
		a.println("Server unavailable, showing cached notifications")
		list = a.feed.Items()
	case err != nil:
		return a.report(err)
	default:
		a.feed.Replace(list)
	}
	a.printNotifications(list)
	return nil
}

// Read marks one notification, or all of them with "read all".
func (a *App) Read(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.report(errors.New("usage: read <id|all>"))
	}

	if args[0] == "all" {
		if err := a.svc.Notifications.MarkAllRead(ctx); err != nil {
			return a.report(err)
		}
		a.feed.MarkAllRead()
		a.println("All notifications marked as read")
		return nil
	}

	if err := a.svc.Notifications.MarkRead(ctx, args[0]); err != nil {
		return a.report(err)
	}
	a.feed.MarkRead(args[0])
	return nil
}
