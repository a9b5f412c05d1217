// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
)

// ParseConfigurationFile - execute a Lua file and map the table it
// returns onto config
func ParseConfigurationFile(fileName string, config interface{}) error {
	return parse(fileName, func(L *lua.LState) error {
		return L.DoFile(fileName)
	}, config)
}

// ParseConfigurationString - as ParseConfigurationFile but from text
func ParseConfigurationString(source string, config interface{}) error {
	return parse("", func(L *lua.LState) error {
		return L.DoString(source)
	}, config)
}

func parse(fileName string, run func(*lua.LState) error, config interface{}) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	if err := run(L); nil != err {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fmt.Errorf("configuration: %q did not return a table", fileName)
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
