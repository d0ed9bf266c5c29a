// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runPost(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := checkSender(c)
	if nil != err {
		return err
	}
	contentId, err := checkRequired(c, "content-id")
	if nil != err {
		return err
	}
	hash, err := checkRequired(c, "hash")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", sender)
		fmt.Fprintf(m.e, "content id: %q\n", contentId)
		fmt.Fprintf(m.e, "hash: %q\n", hash)
	}

	err = m.ledger.PostContent(sender, []byte(contentId), []byte(hash))
	if nil != err {
		return err
	}

	return printJson(m.w, accepted{Operation: "post", Sender: sender})
}
