// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runComment(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := checkSender(c)
	if nil != err {
		return err
	}
	commentId, err := checkRequired(c, "comment-id")
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
		fmt.Fprintf(m.e, "comment id: %q\n", commentId)
		fmt.Fprintf(m.e, "content id: %q\n", contentId)
	}

	err = m.ledger.AddComment(sender, []byte(commentId), []byte(contentId), []byte(hash))
	if nil != err {
		return err
	}

	return printJson(m.w, accepted{Operation: "comment", Sender: sender})
}

func runCommentInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	commentId, err := checkRequired(c, "comment-id")
	if nil != err {
		return err
	}

	record, err := m.ledger.Comment([]byte(commentId))
	if nil != err {
		return err
	}

	return printJson(m.w, record)
}
