// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treestore/configuration"
	"github.com/bitmark-inc/treestore/fault"
	"github.com/bitmark-inc/treestore/hashfn"
	"github.com/bitmark-inc/treestore/htable"
	"github.com/bitmark-inc/treestore/util"
)

// basic defaults (directories and files are relative to the directory
// holding the configuration file)
const (
	defaultHash       = "crc32"
	defaultShardMask  = htable.DefaultShardMask
	defaultWorkers    = 4
	defaultOperations = 100000
	defaultKeySpace   = 10000
	defaultSetPercent = 50
	defaultGetPercent = 40

	defaultLogDirectory = "log"
	defaultLogFile      = "treebench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - workload settings read from the Lua file
type Configuration struct {
	Hash        string               `gluamapper:"hash" json:"hash"`
	ShardMask   uint32               `gluamapper:"shard_mask" json:"shard_mask"`
	ObjectLimit int                  `gluamapper:"object_limit" json:"object_limit"`
	Workers     int                  `gluamapper:"workers" json:"workers"`
	Operations  int                  `gluamapper:"operations" json:"operations"`
	KeySpace    int                  `gluamapper:"key_space" json:"key_space"`
	SetPercent  int                  `gluamapper:"set_percent" json:"set_percent"`
	GetPercent  int                  `gluamapper:"get_percent" json:"get_percent"`
	Rate        float64              `gluamapper:"rate" json:"rate"`
	Seed        int64                `gluamapper:"seed" json:"seed"`
	Dump        bool                 `gluamapper:"dump" json:"dump"`
	Logging     logger.Configuration `gluamapper:"logging" json:"logging"`
}

// defaults before the file is read
func defaultConfiguration() *Configuration {
	return &Configuration{
		Hash:       defaultHash,
		ShardMask:  defaultShardMask,
		Workers:    defaultWorkers,
		Operations: defaultOperations,
		KeySpace:   defaultKeySpace,
		SetPercent: defaultSetPercent,
		GetPercent: defaultGetPercent,
		Seed:       1,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()
	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	if err := util.EnsurePlainFile(options.Logging.File); nil != err {
		return nil, err
	}
	options.Logging.Directory, err = util.MakeDirectory(dataDirectory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}

	return options, nil
}

// check values and fill in anything derived
func (c *Configuration) validate() error {
	c.Hash = strings.ToLower(strings.TrimSpace(c.Hash))
	if _, err := hashfn.ByName(c.Hash); nil != err {
		return err
	}

	if c.ShardMask > htable.MaximumShardMask || 0 != (c.ShardMask+1)&c.ShardMask {
		return fault.ErrInvalidShardMask
	}

	if c.ObjectLimit < 0 || c.Workers <= 0 || c.Operations < 0 || c.KeySpace <= 0 {
		return fault.ErrInvalidCount
	}

	if c.SetPercent < 0 || c.GetPercent < 0 || c.SetPercent+c.GetPercent > 100 {
		return fault.ErrInvalidOperationMix
	}

	if c.Rate < 0 {
		return fault.ErrInvalidRate
	}

	return nil
}

// percentage of operations that are deletes
func (c *Configuration) deletePercent() int {
	return 100 - c.SetPercent - c.GetPercent
}
