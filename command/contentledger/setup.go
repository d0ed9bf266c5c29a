// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/contentledger/ledger"
	"github.com/bitmark-inc/contentledger/payment"
	"github.com/bitmark-inc/contentledger/storage"
)

// open both databases and build the ledger over them
func (m *metadata) open() error {
	if !m.config.HasReserve() {
		return fmt.Errorf("configuration has no payment reserve account")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "ledger database: %s\n", m.config.Database.Name)
		fmt.Fprintf(m.e, "payment database: %s\n", m.config.Database.Payment)
	}

	ledgerStore, err := storage.Open(m.config.Database.Name, storage.ReadWrite)
	if nil != err {
		return err
	}
	m.stores = append(m.stores, ledgerStore)

	paymentStore, err := storage.Open(m.config.Database.Payment, storage.ReadWrite)
	if nil != err {
		m.close()
		return err
	}
	m.stores = append(m.stores, paymentStore)

	asset := payment.AssetId(m.config.Ledger.AssetId)
	m.pool = payment.NewPool(paymentStore, asset, m.config.Payment.ReserveAccount)

	m.ledger, err = ledger.New(ledgerStore, m.pool, m.config.Ledger)
	if nil != err {
		m.close()
		return err
	}
	return nil
}

func (m *metadata) close() {
	for _, s := range m.stores {
		s.Close()
	}
	m.stores = nil
}
