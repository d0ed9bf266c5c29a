// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/contentledger/account"
	"github.com/bitmark-inc/contentledger/fault"
	"github.com/bitmark-inc/contentledger/storage"
)

// Pool - balances of a single asset
//
// every transfer is paid out of the reserve account
type Pool struct {
	sync.Mutex
	log     *logger.L
	store   *storage.Store
	asset   AssetId
	reserve account.Account
}

// NewPool - create a pool for one asset over an open store
//
// the store must not be shared with the ledger as each holds its own
// transaction open while it works
func NewPool(store *storage.Store, asset AssetId, reserve account.Account) *Pool {
	return &Pool{
		log:     logger.New("payment"),
		store:   store,
		asset:   asset,
		reserve: reserve,
	}
}

// Asset - the asset handled by this pool
func (p *Pool) Asset() AssetId {
	return p.asset
}

// Reserve - the account that transfers are debited from
func (p *Pool) Reserve() account.Account {
	return p.reserve
}

// Balance - current committed balance of an account
func (p *Pool) Balance(a account.Account) uint64 {
	p.Lock()
	defer p.Unlock()

	n, _ := p.store.Pool.Balances.GetN(a.Bytes())
	return n
}

// Fund - add to the reserve
func (p *Pool) Fund(amount uint64) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}

	p.Lock()
	defer p.Unlock()

	trx, err := p.store.Begin()
	if nil != err {
		return err
	}

	key := p.reserve.Bytes()
	balance, _ := trx.GetN(p.store.Pool.Balances, key)
	if balance+amount < balance {
		trx.Abort()
		return fault.ErrInvalidAmount
	}
	trx.PutN(p.store.Pool.Balances, key, balance+amount)

	err = trx.Commit()
	if nil != err {
		return err
	}

	p.log.Infof("fund: %d  reserve: %s  balance: %d", amount, p.reserve, balance+amount)
	return nil
}

// Transfer - move amount from the reserve to the receiver
func (p *Pool) Transfer(asset AssetId, amount uint64, receiver account.Account) error {
	if asset != p.asset {
		p.log.Warnf("transfer: asset: %s  expected: %s", asset, p.asset)
		return fault.ErrWrongAsset
	}
	if 0 == amount {
		return fault.ErrInvalidAmount
	}

	p.Lock()
	defer p.Unlock()

	trx, err := p.store.Begin()
	if nil != err {
		return err
	}

	reserveKey := p.reserve.Bytes()
	receiverKey := receiver.Bytes()

	available, _ := trx.GetN(p.store.Pool.Balances, reserveKey)
	if available < amount {
		trx.Abort()
		p.log.Warnf("transfer: %d  to: %s  reserve only has: %d", amount, receiver, available)
		return fault.ErrInsufficientFunds
	}
	trx.PutN(p.store.Pool.Balances, reserveKey, available-amount)

	// read after the debit so a transfer to the reserve itself balances
	balance, _ := trx.GetN(p.store.Pool.Balances, receiverKey)
	if balance+amount < balance {
		trx.Abort()
		return fault.ErrInvalidAmount
	}
	trx.PutN(p.store.Pool.Balances, receiverKey, balance+amount)

	err = trx.Commit()
	if nil != err {
		return err
	}

	p.log.Infof("transfer: %d of: %s  to: %s", amount, asset, receiver)
	return nil
}
