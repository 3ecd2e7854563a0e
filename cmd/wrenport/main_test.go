package main

import (
	"testing"

	"github.com/redthing1/wren-port/hostcfg"
	"github.com/redthing1/wren-port/value"
)

func TestErrorKindName(t *testing.T) {
	cases := []struct {
		kind hostcfg.ErrorKind
		want string
	}{
		{hostcfg.CompileError, "Compile Error"},
		{hostcfg.RuntimeError, "Runtime Error"},
		{hostcfg.StackTraceError, "Stack Trace"},
		{hostcfg.ErrorKind(99), "Error"},
	}
	for _, c := range cases {
		if got := errorKindName(c.kind); got != c.want {
			t.Errorf("errorKindName(%v) = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "class"); got != "1 class" {
		t.Errorf("pluralize(1, class) = %q, want \"1 class\"", got)
	}
	if got := pluralize(2, "class"); got != "2 classs" {
		t.Errorf("pluralize(2, class) = %q, want \"2 classs\"", got)
	}
	if got := pluralize(0, "class"); got != "0 classs" {
		t.Errorf("pluralize(0, class) = %q, want \"0 classs\"", got)
	}
}

func TestDescribeResult(t *testing.T) {
	if got := describeResult(value.Null); got != "null" {
		t.Errorf("describeResult(null) = %q, want null", got)
	}
	if got := describeResult(value.NewNum(3.5)); got != "3.5" {
		t.Errorf("describeResult(3.5) = %q, want 3.5", got)
	}
	if got := describeResult(value.NewBool(true)); got != "true" {
		t.Errorf("describeResult(true) = %q, want true", got)
	}
	s := value.NewString("hi").Value()
	if got := describeResult(s); got != `"hi"` {
		t.Errorf("describeResult(\"hi\") = %q, want %q", got, `"hi"`)
	}
}
