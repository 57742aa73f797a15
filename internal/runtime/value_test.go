package runtime

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTruthyRules(t *testing.T) {
	cases := []struct {
		name string
		v    *Value
		want bool
	}{
		{"null", Null, false},
		{"false", NewBoolean(false), false},
		{"true", NewBoolean(true), true},
		{"zero int", NewInteger(0), false},
		{"nonzero int", NewInteger(5), true},
		{"zero decimal", NewDecimal(decimal.Zero), false},
		{"empty string", NewString(""), false},
		{"nonempty string", NewString("x"), true},
		{"empty list", NewList(nil), true},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("%s: Truthy() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestDictPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("b", NewInteger(2))
	d.Set("a", NewInteger(1))
	d.Set("b", NewInteger(20))
	want := []string{"b", "a"}
	if len(d.DictKey) != len(want) {
		t.Fatalf("DictKey = %v, want %v", d.DictKey, want)
	}
	for i := range want {
		if d.DictKey[i] != want[i] {
			t.Errorf("DictKey[%d] = %q, want %q", i, d.DictKey[i], want[i])
		}
	}
	if d.Dict["b"].Int != 20 {
		t.Errorf("Dict[b].Int = %d, want 20 (overwrite)", d.Dict["b"].Int)
	}
}

func TestValueStringRendering(t *testing.T) {
	if got := NewInteger(42).String(); got != "42" {
		t.Errorf("got %q", got)
	}
	if got := NewBoolean(true).String(); got != "verdadero" {
		t.Errorf("got %q", got)
	}
	if got := Null.String(); got != "nulo" {
		t.Errorf("got %q", got)
	}
	list := NewList([]*Value{NewInteger(1), NewString("x")})
	if got := list.String(); got != "[1, x]" {
		t.Errorf("got %q", got)
	}
}
