// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
)

// Envvar describes an environment variable understood by qcirc.
type Envvar struct {
	Name string
	Defv string
	Desc string
}

var (
	envMu   sync.Mutex
	envvars = map[string]Envvar{}
)

// RegEnv registers an environment variable with its default value and description.
func RegEnv(name, defv, desc string) {
	envMu.Lock()
	defer envMu.Unlock()
	envvars[name] = Envvar{Name: name, Defv: defv, Desc: desc}
}

// GetEnvvars returns all registered variables sorted by name.
func GetEnvvars() []Envvar {
	envMu.Lock()
	defer envMu.Unlock()
	var evs []Envvar
	for _, ev := range envvars {
		evs = append(evs, ev)
	}
	sort.Slice(evs, func(i, j int) bool { return evs[i].Name < evs[j].Name })
	return evs
}

// GetEnv returns the value of a registered environment variable or its default.
// Asking for an unregistered variable is a programming error and aborts.
func GetEnv(name string) string {
	envMu.Lock()
	ev, ok := envvars[name]
	envMu.Unlock()
	if !ok {
		panic(fmt.Sprintf("environment variable %s not registered", name))
	}
	if val, has := os.LookupEnv(name); has { //permit:os.LookupEnv
		return val
	}
	return ev.Defv
}

// GetEnvInt is GetEnv for integer variables.
func GetEnvInt(name string) (int, error) {
	s := GetEnv(name)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", name, s)
	}
	return v, nil
}
