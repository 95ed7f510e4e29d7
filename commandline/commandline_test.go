// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"testing"
)

func TestFlags(t *testing.T) {
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	register(&flags)
	if err := flags.Parse([]string{"-f", "-width=1024", "-map", "q3dm17", "-metrics", ":9100"}); err != nil {
		t.Fatal(err)
	}
	if !Fullscreen() {
		t.Errorf("Fullscreen() = false")
	}
	if Width() != 1024 {
		t.Errorf("Width() = %v", Width())
	}
	if Height() != -1 {
		t.Errorf("Height() = %v", Height())
	}
	if Map() != "q3dm17" {
		t.Errorf("Map() = %v", Map())
	}
	if Metrics() != ":9100" {
		t.Errorf("Metrics() = %v", Metrics())
	}
	if Debug() {
		t.Errorf("Debug() = true")
	}
}
