// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Content        *PoolHandle `prefix:"C"`
	Creator        *PoolHandle `prefix:"O"`
	Upvotes        *PoolHandle `prefix:"U"`
	Downvotes      *PoolHandle `prefix:"D"`
	Votes          *PoolHandle `prefix:"V"`
	TipsReceived   *PoolHandle `prefix:"T"`
	Reputation     *PoolHandle `prefix:"R"`
	Comments       *PoolHandle `prefix:"M"`
	CommentAuthors *PoolHandle `prefix:"A"`
	CommentContent *PoolHandle `prefix:"K"`
	Totals         *PoolHandle `prefix:"G"`
	Balances       *PoolHandle `prefix:"B"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - an open database and its pools
type Store struct {
	sync.Mutex
	log    *logger.L
	name   string
	db     *leveldb.DB
	access Access
	trx    *transaction

	Pool Pools
}

// Open - open up the database file
//
// the name is used as the directory for LevelDB
func Open(name string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return newStore(name, db, readOnly)
}

// OpenMemory - a database that is discarded on Close
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return newStore("memory", db, ReadWrite)
}

func newStore(name string, db *leveldb.DB, readOnly bool) (*Store, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database: %q version: %d > current version: %d", name, version, currentDBVersion)
		return nil, fmt.Errorf("database: %q version: %d > current version: %d", name, version, currentDBVersion)
	}

	if 0 == version {
		if readOnly {
			return nil, fmt.Errorf("database: %q has no version", name)
		}

		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	s := &Store{
		log:    log,
		name:   name,
		db:     db,
		access: newDA(db, new(leveldb.Batch), newCache()),
	}
	s.trx = newTransaction(s.access)

	err = s.setupPools()
	if nil != err {
		return nil, err
	}

	log.Infof("opened database: %q  version: %d", name, currentDBVersion)

	ok = true // prevent db close
	return s, nil
}

// scan each field of the pool structure and assign a handle
func (s *Store) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	seen := make(map[byte]string)
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		prefix := prefixTag[0]
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %v has same prefix: %q as: %v", fieldInfo.Name, prefixTag, other)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			name:     fieldInfo.Name,
			prefix:   prefix,
			limit:    limit,
			database: s.db,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()

	if nil != s.db {
		s.db.Close()
		s.db = nil
		s.log.Infof("closed database: %q", s.name)
	}
}

// Begin - start a transaction
//
// only one transaction can be in use at a time, it must be finished
// by either Commit or Abort
func (s *Store) Begin() (Transaction, error) {
	err := s.trx.begin()
	if nil != err {
		return nil, err
	}
	return s.trx, nil
}

// PoolByPrefix - locate a pool from its tag character
func (s *Store) PoolByPrefix(tag string) (*PoolHandle, bool) {
	poolType := reflect.TypeOf(s.Pool)
	poolValue := reflect.ValueOf(s.Pool)
	for i := 0; i < poolType.NumField(); i += 1 {
		if tag == poolType.Field(i).Tag.Get("prefix") {
			return poolValue.Field(i).Interface().(*PoolHandle), true
		}
	}
	return nil, false
}

// PoolTags - list of "prefix → name" for display
func PoolTags() []string {
	poolType := reflect.TypeOf(Pools{})
	tags := make([]string, 0, poolType.NumField())
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		tags = append(tags, fieldInfo.Tag.Get("prefix")+" → "+fieldInfo.Name)
	}
	return tags
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
