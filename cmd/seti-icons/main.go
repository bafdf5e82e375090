// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kovidgoyal/seti-icons/tools/cli"
	"github.com/kovidgoyal/seti-icons/tools/cmd/tool"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	rc := cli.Execute(ctx, tool.NewRootCommand(), os.Args[1:])
	cancel()
	os.Exit(rc)
}
