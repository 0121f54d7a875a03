// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/treestore/fault"
)

// ParseConfigurationFile - read and execute a Lua file and assign the
// table it returns to a configuration structure
//
// fields are matched by their "gluamapper" tag, fields missing from
// the table keep whatever value they held before the call
func ParseConfigurationFile(fileName string, config interface{}) error {
	if v := reflect.ValueOf(config); reflect.Ptr != v.Kind() || v.IsNil() {
		return fault.ErrInvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := L.DoFile(fileName); nil != err {
		return err
	}

	return mapTop(L, config)
}

// ParseConfigurationString - as ParseConfigurationFile but the Lua
// source is given directly
func ParseConfigurationString(source string, config interface{}) error {
	if v := reflect.ValueOf(config); reflect.Ptr != v.Kind() || v.IsNil() {
		return fault.ErrInvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()
	L.SetGlobal("arg", &lua.LTable{})

	if err := L.DoString(source); nil != err {
		return err
	}

	return mapTop(L, config)
}

// internal: map the value left on top of the stack
func mapTop(L *lua.LState, config interface{}) error {
	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrConfigurationNotTable
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string {
				return s
			},
			TagName: "gluamapper",
		},
	}
	return mapper.Map(table, config)
}
