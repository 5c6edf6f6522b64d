// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
	"sort"
	"time"
)

type timeStats struct {
	sum  float64
	sum2 float64
	cnt  int
}

// Timer keeps timing measurements per tag, e.g. per backend.
type Timer struct {
	start time.Time
	time  map[string]timeStats
}

// NewTimer returns a new Timer object
func NewTimer() *Timer {
	return &Timer{
		start: time.Now(),
		time:  make(map[string]timeStats),
	}
}

// AddTime adds a time duration to a tag
func (s *Timer) AddTime(tag string, d time.Duration) {
	t := s.time[tag]
	t.sum += float64(d)
	t.sum2 += float64(d) * float64(d)
	t.cnt++
	s.time[tag] = t
}

func (ts timeStats) mean() time.Duration {
	return time.Duration(ts.sum / float64(ts.cnt))
}

func (ts timeStats) sd() time.Duration {
	cnt := float64(ts.cnt)
	v := ts.sum2/cnt - math.Pow(ts.sum/cnt, 2)
	if v < 0 {
		v = 0
	}
	return time.Duration(math.Sqrt(v))
}

// GetTime returns mean and standard deviation of the durations of a tag.
func (s *Timer) GetTime(tag string) (time.Duration, time.Duration) {
	if tstats, has := s.time[tag]; has {
		return tstats.mean(), tstats.sd()
	}
	return 0, 0
}

// Count returns how many durations were added to a tag.
func (s *Timer) Count(tag string) int {
	return s.time[tag].cnt
}

// String is the string representation of the timer.
func (s *Timer) String() string {
	var (
		str  string
		tags []string
	)
	for tag := range s.time {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	elapsed := time.Since(s.start)
	str += fmt.Sprintf("Total time: %v\n", elapsed)
	for _, tag := range tags {
		tstats := s.time[tag]
		str += fmt.Sprintf("Mean time %s: %v (sd=%v cnt=%v)\n", tag, tstats.mean(), tstats.sd(), tstats.cnt)
	}
	return str
}
