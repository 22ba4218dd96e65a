// Package cli implements the terminal commands of the WagerTrack client.
// Commands talk only to the offline-first façade; connectivity, caching and
// queueing are invisible at this layer.
package cli

import (
	"fmt"

	"github.com/wagertrack/wagertrack/internal/client/iocli"
	"github.com/wagertrack/wagertrack/internal/client/offlineapi"
)

type Cli struct {
	client *offlineapi.Client
	io     iocli.IO
}

func New(client *offlineapi.Client, io iocli.IO) *Cli {
	return &Cli{
		client: client,
		io:     io,
	}
}

func PrintUsage() {
	fmt.Println("WagerTrack Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  wagertrack [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version            Show version information")
	fmt.Println("  --server URL         Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH            Path to local database (default: wagertrack-client.db)")
	fmt.Println("  --storage BACKEND    Local storage backend: bolt or sqlite (default: bolt)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register             Register a new account")
	fmt.Println("  login                Login to server")
	fmt.Println("  logout               Logout, clearing the session and offline data")
	fmt.Println("  status               Show session, sync and storage status")
	fmt.Println("  add                  Add a new bet (works offline)")
	fmt.Println("  list                 List bets (sport=X status=Y limit=N filters)")
	fmt.Println("  delete <id>          Delete a bet")
	fmt.Println("  stats                Show betting statistics")
	fmt.Println("  sync                 Replay queued writes now")
	fmt.Println("  refresh              Force a full refresh of cached data")
	fmt.Println("  clear                Clear cached and queued offline data")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  wagertrack login")
	fmt.Println("  wagertrack add")
	fmt.Println("  wagertrack list sport=NBA status=PENDING")
	fmt.Println("  wagertrack --server https://example.com sync")
}
