// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// contentledger - apply content ledger operations from the command line
//
// each invocation opens the databases named in the configuration
// file, applies a single operation as the --sender account and
// prints the result as JSON
//
//	contentledger -c contentledger.conf generate
//	contentledger -c contentledger.conf -s SENDER post -i c1 -H hashA
//	contentledger -c contentledger.conf -s SENDER vote -i c1
//	contentledger -c contentledger.conf content -i c1
package main
