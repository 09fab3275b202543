// Command mcstatus connects to a Minecraft server, performs a status
// query, and prints the round-trip ping and the server's status JSON.
package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/op/go-logging"
	"github.com/urfave/cli"

	"mcproto.dev/client/internal/cliutil"
	"mcproto.dev/client/internal/config"
	"mcproto.dev/client/internal/mclog"
	"mcproto.dev/client/internal/state"
	"mcproto.dev/client/internal/transport"
	"mcproto.dev/client/internal/version"
)

func statusCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.NewExitError("usage: mcstatus <host> <port>", 1)
	}
	host := c.Args().Get(0)
	port, err := strconv.ParseUint(c.Args().Get(1), 10, 16)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid port number: %s", err.Error()), 1)
	}

	cfg := config.Resolve(host, uint16(port))

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, c.Args().Get(1)), cfg.DialTimeout)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer conn.Close()

	sess := transport.NewSession(bufio.NewReader(conn), conn)
	h := state.NewHandshake(sess, host, uint16(port), cfg.ProtocolVersion)
	status, err := h.Status()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	data, ping, err := status.Query()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	fmt.Printf("Ping: %s\n", cliutil.Green(fmt.Sprintf("%dms", ping.Milliseconds())))
	fmt.Printf("Version: %s (protocol %d)\n", data.Version.Name, data.Version.Protocol)
	fmt.Printf("Players: %d/%d\n", data.Players.Online, data.Players.Max)
	fmt.Printf("Raw: %s\n", data.Raw)
	return nil
}

func main() {
	mclog.SetupLogging("mcstatus", logging.NOTICE)

	app := cli.NewApp()
	app.Name = "mcstatus"
	app.Usage = "query a Minecraft server's status"
	app.Version = version.ClientVersion.String()
	app.ArgsUsage = "<host> <port>"
	app.Action = statusCommand

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, cliutil.Red(err.Error()))
		os.Exit(1)
	}
}
