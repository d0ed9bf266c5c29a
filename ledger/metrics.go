// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// operation names used as the metric label
const (
	opPostContent   = "post_content"
	opVote          = "vote"
	opTipCreator    = "tip_creator"
	opAddComment    = "add_comment"
	opRemoveContent = "remove_content"
)

const (
	resultAccepted = "accepted"
	resultRejected = "rejected"
)

var operationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "contentledger_operations_total",
		Help: "Number of ledger operations by outcome",
	},
	[]string{"operation", "result"},
)

func (l *Ledger) record(op string, err error) {
	if nil == err {
		operationsTotal.WithLabelValues(op, resultAccepted).Inc()
		return
	}
	operationsTotal.WithLabelValues(op, resultRejected).Inc()
	l.log.Debugf("%s: rejected: %s", op, err)
}
