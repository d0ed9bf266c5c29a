// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/contentledger/configuration"
	"github.com/bitmark-inc/contentledger/ledger"
	"github.com/bitmark-inc/contentledger/payment"
	"github.com/bitmark-inc/contentledger/storage"
)

type metadata struct {
	config  *configuration.Configuration
	ledger  *ledger.Ledger
	pool    *payment.Pool
	stores  []*storage.Store
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "contentledger"
	app.Usage = "social content ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "contentledger.conf",
			Usage: " configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "sender, s",
			Value: "",
			Usage: " account performing the operation `ACCOUNT`",
		},
		cli.BoolFlag{
			Name:  "testnet, t",
			Usage: " generate test network accounts",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new account key pair",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "post",
			Usage:     "post new content as the sender",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "content-id, i",
					Value: "",
					Usage: "*content `ID`",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "*content `HASH`",
				},
			},
			Action: runPost,
		},
		{
			Name:      "vote",
			Usage:     "vote on content, upvotes pay the creator a reward",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "content-id, i",
					Value: "",
					Usage: "*content `ID`",
				},
				cli.BoolFlag{
					Name:  "down, d",
					Usage: " downvote instead of upvote",
				},
			},
			Action: runVote,
		},
		{
			Name:      "tip",
			Usage:     "tip an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to receive the tip `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to tip `COUNT`",
				},
			},
			Action: runTip,
		},
		{
			Name:      "comment",
			Usage:     "comment on content as the sender",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "comment-id, m",
					Value: "",
					Usage: "*comment `ID`",
				},
				cli.StringFlag{
					Name:  "content-id, i",
					Value: "",
					Usage: "*content `ID` being commented on",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "*comment `HASH`",
				},
			},
			Action: runComment,
		},
		{
			Name:      "remove",
			Usage:     "remove content, sender must be the creator",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "content-id, i",
					Value: "",
					Usage: "*content `ID`",
				},
			},
			Action: runRemove,
		},
		{
			Name:      "reputation",
			Usage:     "reputation and tips of an account",
			ArgsUsage: "\n   (* = required, + = default is sender)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+account `ACCOUNT`",
				},
			},
			Action: runReputation,
		},
		{
			Name:      "hidden",
			Usage:     "check if content is hidden by downvotes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "content-id, i",
					Value: "",
					Usage: "*content `ID`",
				},
			},
			Action: runHidden,
		},
		{
			Name:      "content",
			Usage:     "show a content record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "content-id, i",
					Value: "",
					Usage: "*content `ID`",
				},
			},
			Action: runContent,
		},
		{
			Name:      "comment-info",
			Usage:     "show a comment record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "comment-id, m",
					Value: "",
					Usage: "*comment `ID`",
				},
			},
			Action: runCommentInfo,
		},
		{
			Name:   "totals",
			Usage:  "number of posts and comments",
			Action: runTotals,
		},
		{
			Name:      "fund",
			Usage:     "add to the payment reserve",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to add `COUNT`",
				},
			},
			Action: runFund,
		},
		{
			Name:      "balance",
			Usage:     "payment balance of an account",
			ArgsUsage: "\n   (+ = default is the reserve)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+account `ACCOUNT`",
				},
			},
			Action: runBalance,
		},
		{
			Name:  "version",
			Usage: "display contentledger version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the databases
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			testnet: c.GlobalBool("testnet"),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file if certain commands
		switch c.Args().Get(0) {
		case "", "help", "h", "version", "generate":
			return nil
		}

		file := c.GlobalString("config")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		options, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}
		m.config = options

		err = logger.Initialise(options.Logging)
		if nil != err {
			return err
		}

		return m.open()
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && nil != m.config {
			m.close()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
