// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/contentledger/account"
	"github.com/bitmark-inc/contentledger/fault"
)

// ContentRecord - current state of posted content
type ContentRecord struct {
	ContentId   string          `json:"contentId"`
	ContentHash string          `json:"contentHash"`
	Creator     account.Account `json:"creator"`
	Upvotes     uint64          `json:"upvotes"`
	Downvotes   uint64          `json:"downvotes"`
	Hidden      bool            `json:"hidden"`
}

// CommentRecord - a stored comment
type CommentRecord struct {
	CommentId   string          `json:"commentId"`
	ContentId   string          `json:"contentId"`
	CommentHash string          `json:"commentHash"`
	Author      account.Account `json:"author"`
}

// Totals - ledger wide counters
type Totals struct {
	Posts    uint64 `json:"posts"`
	Comments uint64 `json:"comments"`
}

// Reputation - score of a user, zero if never seen
func (l *Ledger) Reputation(user account.Account) uint64 {
	l.Lock()
	defer l.Unlock()

	n, _ := l.pools.Reputation.GetN(user.Bytes())
	return n
}

// IsHidden - true when the downvotes have reached the threshold
//
// absent content has no downvotes
func (l *Ledger) IsHidden(contentId []byte) bool {
	l.Lock()
	defer l.Unlock()

	return l.isHidden(contentId)
}

func (l *Ledger) isHidden(contentId []byte) bool {
	n, _ := l.pools.Downvotes.GetN(contentId)
	return n >= l.downvoteThreshold
}

// TipsReceived - total of tips and rewards credited to a user
func (l *Ledger) TipsReceived(user account.Account) uint64 {
	l.Lock()
	defer l.Unlock()

	n, _ := l.pools.TipsReceived.GetN(user.Bytes())
	return n
}

// HasVoted - true if the voter has ever voted on the content id
func (l *Ledger) HasVoted(voter account.Account, contentId []byte) bool {
	l.Lock()
	defer l.Unlock()

	return l.pools.Votes.Has(VoteKey{Voter: voter, ContentId: contentId}.Bytes())
}

// Content - read back a content record
func (l *Ledger) Content(contentId []byte) (*ContentRecord, error) {
	l.Lock()
	defer l.Unlock()

	hash := l.pools.Content.Get(contentId)
	if nil == hash {
		return nil, fault.ErrContentNotFound
	}

	creator, err := account.FromBytes(l.pools.Creator.Get(contentId))
	logger.PanicIfError("ledger: creator record", err)

	up, _ := l.pools.Upvotes.GetN(contentId)
	down, _ := l.pools.Downvotes.GetN(contentId)

	return &ContentRecord{
		ContentId:   string(contentId),
		ContentHash: string(hash),
		Creator:     creator,
		Upvotes:     up,
		Downvotes:   down,
		Hidden:      l.isHidden(contentId),
	}, nil
}

// Comment - read back a comment record
func (l *Ledger) Comment(commentId []byte) (*CommentRecord, error) {
	l.Lock()
	defer l.Unlock()

	hash := l.pools.Comments.Get(commentId)
	if nil == hash {
		return nil, fault.ErrCommentNotFound
	}

	author, err := account.FromBytes(l.pools.CommentAuthors.Get(commentId))
	logger.PanicIfError("ledger: comment author record", err)

	return &CommentRecord{
		CommentId:   string(commentId),
		ContentId:   string(l.pools.CommentContent.Get(commentId)),
		CommentHash: string(hash),
		Author:      author,
	}, nil
}

// Totals - number of posts and comments ever made
func (l *Ledger) Totals() Totals {
	l.Lock()
	defer l.Unlock()

	posts, _ := l.pools.Totals.GetN(totalPostsKey)
	comments, _ := l.pools.Totals.GetN(totalCommentsKey)
	return Totals{
		Posts:    posts,
		Comments: comments,
	}
}
