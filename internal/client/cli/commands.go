package cli

import (
	"context"
	"fmt"
)

// Run dispatches a command. Unknown commands are an error so main can print
// usage and exit non-zero.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "add":
		return c.runAdd(ctx)
	case "list":
		return c.runList(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "stats":
		return c.runStats(ctx)
	case "sync":
		return c.runSync(ctx)
	case "refresh":
		return c.runRefresh(ctx)
	case "clear":
		return c.runClear(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
