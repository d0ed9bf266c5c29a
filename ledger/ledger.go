// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/contentledger/account"
	"github.com/bitmark-inc/contentledger/fault"
	"github.com/bitmark-inc/contentledger/storage"
)

// PostContent - register new content created by the sender
func (l *Ledger) PostContent(sender account.Account, contentId []byte, contentHash []byte) error {
	l.Lock()
	defer l.Unlock()

	err := l.postContent(sender, contentId, contentHash)
	l.record(opPostContent, err)
	return err
}

func (l *Ledger) postContent(sender account.Account, contentId []byte, contentHash []byte) error {
	if 0 == len(contentId) {
		return fault.ErrEmptyContentId
	}
	if 0 == len(contentHash) {
		return fault.ErrEmptyContentHash
	}

	trx, err := l.store.Begin()
	if nil != err {
		return err
	}

	if trx.Has(l.pools.Content, contentId) {
		trx.Abort()
		return fault.ErrContentExists
	}

	trx.Put(l.pools.Content, contentId, contentHash)
	trx.Put(l.pools.Creator, contentId, sender.Bytes())
	trx.PutN(l.pools.Upvotes, contentId, 0)
	trx.PutN(l.pools.Downvotes, contentId, 0)
	increment(trx, l.pools.Totals, totalPostsKey, 1)
	increment(trx, l.pools.Reputation, sender.Bytes(), postReputation)

	err = trx.Commit()
	if nil != err {
		return err
	}

	l.log.Infof("post: %q  hash: %x  creator: %s", contentId, contentHash, sender)
	return nil
}

// Vote - cast the sender's single vote on some content
//
// an upvote pays the reward to the creator, if that transfer fails
// the vote is not recorded
func (l *Ledger) Vote(sender account.Account, contentId []byte, isUpvote bool) error {
	l.Lock()
	defer l.Unlock()

	err := l.vote(sender, contentId, isUpvote)
	l.record(opVote, err)
	return err
}

func (l *Ledger) vote(sender account.Account, contentId []byte, isUpvote bool) error {
	if 0 == len(contentId) {
		return fault.ErrEmptyContentId
	}

	trx, err := l.store.Begin()
	if nil != err {
		return err
	}

	creator, found := l.creator(trx, contentId)
	if !found {
		trx.Abort()
		return fault.ErrContentNotFound
	}

	voteKey := VoteKey{Voter: sender, ContentId: contentId}.Bytes()
	if trx.Has(l.pools.Votes, voteKey) {
		trx.Abort()
		return fault.ErrAlreadyVoted
	}
	trx.PutN(l.pools.Votes, voteKey, 1)

	if !isUpvote {
		increment(trx, l.pools.Downvotes, contentId, 1)
		decrement(trx, l.pools.Reputation, creator.Bytes(), downvoteReputation)

		err = trx.Commit()
		if nil != err {
			return err
		}
		l.log.Infof("downvote: %q  voter: %s", contentId, sender)
		return nil
	}

	increment(trx, l.pools.Upvotes, contentId, 1)
	increment(trx, l.pools.Reputation, sender.Bytes(), voterReputation)
	increment(trx, l.pools.TipsReceived, creator.Bytes(), l.rewardPerUpvote)
	increment(trx, l.pools.Reputation, creator.Bytes(), upvotedReputation)

	err = l.transferAndCommit(trx, opVote, l.rewardPerUpvote, creator)
	if nil != err {
		return err
	}
	l.log.Infof("upvote: %q  voter: %s  reward: %d to: %s", contentId, sender, l.rewardPerUpvote, creator)
	return nil
}

// TipCreator - pay an amount to the receiver and credit their tips
// and reputation
func (l *Ledger) TipCreator(sender account.Account, receiver account.Account, amount uint64) error {
	l.Lock()
	defer l.Unlock()

	err := l.tipCreator(sender, receiver, amount)
	l.record(opTipCreator, err)
	return err
}

func (l *Ledger) tipCreator(sender account.Account, receiver account.Account, amount uint64) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}

	trx, err := l.store.Begin()
	if nil != err {
		return err
	}

	increment(trx, l.pools.TipsReceived, receiver.Bytes(), amount)
	increment(trx, l.pools.Reputation, receiver.Bytes(), amount/tipReputationRatio)

	err = l.transferAndCommit(trx, opTipCreator, amount, receiver)
	if nil != err {
		return err
	}
	l.log.Infof("tip: %d  from: %s  to: %s", amount, sender, receiver)
	return nil
}

// AddComment - attach a comment by the sender to some content
//
// the content need not exist
func (l *Ledger) AddComment(sender account.Account, commentId []byte, contentId []byte, commentHash []byte) error {
	l.Lock()
	defer l.Unlock()

	err := l.addComment(sender, commentId, contentId, commentHash)
	l.record(opAddComment, err)
	return err
}

func (l *Ledger) addComment(sender account.Account, commentId []byte, contentId []byte, commentHash []byte) error {
	if 0 == len(commentId) {
		return fault.ErrEmptyCommentId
	}
	if 0 == len(contentId) {
		return fault.ErrEmptyContentId
	}
	if 0 == len(commentHash) {
		return fault.ErrEmptyCommentHash
	}

	trx, err := l.store.Begin()
	if nil != err {
		return err
	}

	if trx.Has(l.pools.Comments, commentId) {
		trx.Abort()
		return fault.ErrCommentExists
	}

	trx.Put(l.pools.Comments, commentId, commentHash)
	trx.Put(l.pools.CommentAuthors, commentId, sender.Bytes())
	trx.Put(l.pools.CommentContent, commentId, contentId)
	increment(trx, l.pools.Totals, totalCommentsKey, 1)
	increment(trx, l.pools.Reputation, sender.Bytes(), commentReputation)

	err = trx.Commit()
	if nil != err {
		return err
	}

	l.log.Infof("comment: %q  on: %q  author: %s", commentId, contentId, sender)
	return nil
}

// RemoveContent - delete content, only its creator may do this
//
// votes and comments on the content are kept
func (l *Ledger) RemoveContent(sender account.Account, contentId []byte) error {
	l.Lock()
	defer l.Unlock()

	err := l.removeContent(sender, contentId)
	l.record(opRemoveContent, err)
	return err
}

func (l *Ledger) removeContent(sender account.Account, contentId []byte) error {
	if 0 == len(contentId) {
		return fault.ErrEmptyContentId
	}

	trx, err := l.store.Begin()
	if nil != err {
		return err
	}

	creator, found := l.creator(trx, contentId)
	if !found {
		trx.Abort()
		return fault.ErrContentNotFound
	}
	if creator != sender {
		trx.Abort()
		return fault.ErrNotCreator
	}

	trx.Delete(l.pools.Content, contentId)
	trx.Delete(l.pools.Upvotes, contentId)
	trx.Delete(l.pools.Downvotes, contentId)
	trx.Delete(l.pools.Creator, contentId)

	err = trx.Commit()
	if nil != err {
		return err
	}

	l.log.Infof("remove: %q  creator: %s", contentId, sender)
	return nil
}

// the transfer is the last step so that a failure only needs the
// staged writes discarded
func (l *Ledger) transferAndCommit(trx storage.Transaction, op string, amount uint64, receiver account.Account) error {
	if amount > 0 {
		err := l.transferer.Transfer(l.asset, amount, receiver)
		if nil != err {
			trx.Abort()
			l.log.Warnf("%s: transfer: %d of: %s  to: %s  error: %s", op, amount, l.asset, receiver, err)
			return fault.NewTransferError(op, err)
		}
	}

	err := trx.Commit()
	if nil != err {
		logger.Panicf("%s: commit after transfer: %d of: %s  to: %s  error: %s", op, amount, l.asset, receiver, err)
	}
	return nil
}

func (l *Ledger) creator(trx storage.Transaction, contentId []byte) (account.Account, bool) {
	creatorBytes := trx.Get(l.pools.Creator, contentId)
	if nil == creatorBytes {
		return account.Account{}, false
	}
	creator, err := account.FromBytes(creatorBytes)
	logger.PanicIfError("ledger: creator record", err)
	return creator, true
}

// add to a counter, saturating at the maximum
func increment(trx storage.Transaction, pool *storage.PoolHandle, key []byte, delta uint64) {
	n, _ := trx.GetN(pool, key)
	if n > math.MaxUint64-delta {
		n = math.MaxUint64
	} else {
		n += delta
	}
	trx.PutN(pool, key, n)
}

// subtract from a counter, saturating at zero
func decrement(trx storage.Transaction, pool *storage.PoolHandle, key []byte, delta uint64) {
	n, _ := trx.GetN(pool, key)
	if n < delta {
		n = 0
	} else {
		n -= delta
	}
	trx.PutN(pool, key, n)
}
