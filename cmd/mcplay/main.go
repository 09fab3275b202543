// Command mcplay connects to a Minecraft server, authenticates with a
// Mojang account, and joins the Play session, replying to the server's
// housekeeping packets (KeepAlive, teleports, ...) indefinitely.
package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/op/go-logging"
	"github.com/urfave/cli"

	"mcproto.dev/client/internal/auth"
	"mcproto.dev/client/internal/cliutil"
	"mcproto.dev/client/internal/config"
	"mcproto.dev/client/internal/mclog"
	"mcproto.dev/client/internal/state"
	"mcproto.dev/client/internal/transport"
	"mcproto.dev/client/internal/version"
)

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func playCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.NewExitError("usage: mcplay <host> <port>", 1)
	}
	host := c.Args().Get(0)
	portArg := c.Args().Get(1)
	port, err := strconv.ParseUint(portArg, 10, 16)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid port number: %s", err.Error()), 1)
	}

	accountID, err := promptLine("Mojang account ID: ")
	if err != nil {
		return cli.NewExitError("EOF reading account id", 1)
	}
	password, err := promptLine("Password: ")
	if err != nil {
		return cli.NewExitError("EOF reading password", 1)
	}

	authn, err := auth.Authenticate(nil, accountID, password)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	cfg := config.Resolve(host, uint16(port))
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, portArg), cfg.DialTimeout)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer conn.Close()

	sess := transport.NewSession(bufio.NewReader(conn), conn)
	h := state.NewHandshake(sess, host, uint16(port), cfg.ProtocolVersion)
	login, err := h.Login()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	play, err := login.Login(authn, auth.MojangSessionVerifier{})
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	fmt.Println(cliutil.Green(fmt.Sprintf("joined as %s (%s)", play.Username, play.UUID)))
	if err := play.Run(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func main() {
	mclog.SetupLogging("mcplay", logging.NOTICE)

	app := cli.NewApp()
	app.Name = "mcplay"
	app.Usage = "authenticate and join a Minecraft server's Play session"
	app.Version = version.ClientVersion.String()
	app.ArgsUsage = "<host> <port>"
	app.Action = playCommand

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, cliutil.Red(err.Error()))
		os.Exit(1)
	}
}
