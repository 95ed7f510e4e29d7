// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import "testing"

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in     string
		wantF  string
		wantAS string
		wantA  []QArg
	}{
		{
			in:     `set r_novis 1`,
			wantF:  `set r_novis 1`,
			wantAS: `r_novis 1`,
			wantA:  []QArg{{"set"}, {"r_novis"}, {"1"}},
		},
		{
			in:     `echo "hello world"`,
			wantF:  `echo "hello world"`,
			wantAS: `hello world`,
			wantA:  []QArg{{"echo"}, {"hello world"}},
		},
		{
			in:     ` toggle  r_drawworld // comment `,
			wantF:  `toggle  r_drawworld // comment`,
			wantAS: `r_drawworld // comment`,
			wantA:  []QArg{{"toggle"}, {"r_drawworld"}},
		},
		{
			in:    `   `,
			wantF: ``,
		},
	} {
		arg := Parse(tc.in)
		if tc.wantF != arg.Full() {
			t.Errorf("Parse(%q).Full()=%q, want %q", tc.in, arg.Full(), tc.wantF)
		}
		if tc.wantAS != arg.ArgumentString() {
			t.Errorf("Parse(%q).ArgumentString()=%q, want %q", tc.in, arg.ArgumentString(), tc.wantAS)
		}
		as := arg.Args()
		if len(as) != len(tc.wantA) {
			t.Errorf("Parse(%q) got %d args, want %d", tc.in, len(as), len(tc.wantA))
			continue
		}
		for i := range tc.wantA {
			if tc.wantA[i] != as[i] {
				t.Errorf("Arg[%d]=%q, want %q", i, as[i], tc.wantA[i])
			}
		}
	}
}

func TestQArg(t *testing.T) {
	a := Parse(`x 12 0.5 on`)
	if got := a.Argv(1).Int(); got != 12 {
		t.Errorf("Int()=%v, want 12", got)
	}
	if got := a.Argv(2).Float32(); got != 0.5 {
		t.Errorf("Float32()=%v, want 0.5", got)
	}
	if !a.Argv(3).Bool() {
		t.Errorf("Bool()=false, want true")
	}
	if got := a.Argv(9).String(); got != "" {
		t.Errorf("Argv(9)=%q, want empty", got)
	}
}
