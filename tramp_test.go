// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp_test

import (
	"slices"
	"strconv"
	"testing"

	"code.hybscloud.com/tramp"
)

func TestRunNow(t *testing.T) {
	result := tramp.Run(tramp.Now(42))
	if result != 42 {
		t.Errorf("Run(Now(42)) = %v, want 42", result)
	}
}

func TestRunNowString(t *testing.T) {
	result := tramp.Run(tramp.Now("hello"))
	if result != "hello" {
		t.Errorf("Run(Now(\"hello\")) = %q, want \"hello\"", result)
	}
}

func TestLaterDefersThunk(t *testing.T) {
	called := false
	c := tramp.Later(func() tramp.Tramp[int] {
		called = true
		return tramp.Now(7)
	})
	if called {
		t.Fatal("Later evaluated its thunk at construction")
	}
	result := tramp.Run(c)
	if !called {
		t.Error("Run did not evaluate the Later thunk")
	}
	if result != 7 {
		t.Errorf("Run(Later) = %v, want 7", result)
	}
}

func TestDelayDefersThunk(t *testing.T) {
	called := false
	c := tramp.Delay(func() int {
		called = true
		return 21
	})
	if called {
		t.Fatal("Delay evaluated its thunk at construction")
	}
	result := tramp.Run(c)
	if !called {
		t.Error("Run did not evaluate the Delay thunk")
	}
	if result != 21 {
		t.Errorf("Run(Delay) = %v, want 21", result)
	}
}

func TestRerunReExecutesThunks(t *testing.T) {
	// No caching: driving the same handle twice runs the thunk twice.
	calls := 0
	c := tramp.Delay(func() int {
		calls++
		return calls
	})
	first := tramp.Run(c)
	second := tramp.Run(c)
	if first != 1 || second != 2 {
		t.Errorf("reruns = (%v, %v), want (1, 2)", first, second)
	}
	if calls != 2 {
		t.Errorf("thunk ran %d times across two drives, want 2", calls)
	}
}

func TestThunkRunsOncePerDrive(t *testing.T) {
	var log []string
	a := tramp.Delay(func() int { log = append(log, "a"); return 1 })
	b := tramp.Delay(func() int { log = append(log, "b"); return 10 })
	c := tramp.Delay(func() int { log = append(log, "c"); return 100 })

	sum := tramp.Bind(a, func(x int) tramp.Tramp[int] {
		return tramp.Bind(b, func(y int) tramp.Tramp[int] {
			return tramp.Map(c, func(z int) int { return x + y + z })
		})
	})

	result := tramp.Run(sum)
	if result != 111 {
		t.Errorf("Run(sum) = %v, want 111", result)
	}
	if !slices.Equal(log, []string{"a", "b", "c"}) {
		t.Errorf("thunk log = %v, want [a b c]", log)
	}
}

func TestRunTypeConversion(t *testing.T) {
	c := tramp.Map(tramp.Now(42), strconv.Itoa)
	result := tramp.Run(c)
	if result != "42" {
		t.Errorf("type conversion = %q, want \"42\"", result)
	}
}

func TestRunNilCompletion(t *testing.T) {
	// Nil terminal values complete with the zero value.
	result := tramp.Run(tramp.Now[[]int](nil))
	if result != nil {
		t.Errorf("Run(Now(nil)) = %v, want nil", result)
	}
}

func TestRunNowAllocs(t *testing.T) {
	c := tramp.Now(42)
	allocs := testing.AllocsPerRun(100, func() {
		_ = tramp.Run(c)
	})
	if allocs > 0 {
		t.Errorf("Run(Now) allocs = %v; want 0", allocs)
	}
}
