// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/contentledger/fault"
	"github.com/bitmark-inc/contentledger/payment"
	"github.com/bitmark-inc/contentledger/storage"
)

// defaults for the fixed constants
const (
	DefaultRewardPerUpvote   = 10
	DefaultAssetId           = 123456
	DefaultDownvoteThreshold = 5
)

// reputation awarded or removed by each operation
const (
	postReputation     = 5
	voterReputation    = 1
	upvotedReputation  = 2
	downvoteReputation = 1
	commentReputation  = 2
	tipReputationRatio = 10
)

// keys of the Totals pool
var (
	totalPostsKey    = []byte("posts")
	totalCommentsKey = []byte("comments")
)

// Configuration - the fixed constants of a ledger
type Configuration struct {
	RewardPerUpvote   uint64 `gluamapper:"reward_per_upvote" json:"reward_per_upvote"`
	AssetId           uint64 `gluamapper:"asset_id" json:"asset_id"`
	DownvoteThreshold uint64 `gluamapper:"downvote_threshold" json:"downvote_threshold"`
}

// DefaultConfiguration - the standard constants
func DefaultConfiguration() Configuration {
	return Configuration{
		RewardPerUpvote:   DefaultRewardPerUpvote,
		AssetId:           DefaultAssetId,
		DownvoteThreshold: DefaultDownvoteThreshold,
	}
}

// Ledger - the content ledger state machine
type Ledger struct {
	sync.Mutex
	log        *logger.L
	store      *storage.Store
	pools      *storage.Pools
	transferer payment.Transferer

	rewardPerUpvote   uint64
	asset             payment.AssetId
	downvoteThreshold uint64
}

// New - create a ledger over an open store
//
// the transferer is called for upvote rewards and tips
func New(store *storage.Store, transferer payment.Transferer, configuration Configuration) (*Ledger, error) {
	if nil == store {
		return nil, fault.ErrDatabaseIsNotSet
	}
	if nil == transferer {
		return nil, fault.ErrNotInitialised
	}

	log := logger.New("ledger")
	log.Infof("reward per upvote: %d  asset: %d  downvote threshold: %d",
		configuration.RewardPerUpvote,
		configuration.AssetId,
		configuration.DownvoteThreshold,
	)

	return &Ledger{
		log:               log,
		store:             store,
		pools:             &store.Pool,
		transferer:        transferer,
		rewardPerUpvote:   configuration.RewardPerUpvote,
		asset:             payment.AssetId(configuration.AssetId),
		downvoteThreshold: configuration.DownvoteThreshold,
	}, nil
}
