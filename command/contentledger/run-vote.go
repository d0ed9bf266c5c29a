// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runVote(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := checkSender(c)
	if nil != err {
		return err
	}
	contentId, err := checkRequired(c, "content-id")
	if nil != err {
		return err
	}
	isUpvote := !c.Bool("down")

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", sender)
		fmt.Fprintf(m.e, "content id: %q\n", contentId)
		fmt.Fprintf(m.e, "upvote: %t\n", isUpvote)
	}

	err = m.ledger.Vote(sender, []byte(contentId), isUpvote)
	if nil != err {
		return err
	}

	return printJson(m.w, accepted{Operation: "vote", Sender: sender})
}
