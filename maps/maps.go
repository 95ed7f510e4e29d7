// SPDX-License-Identifier: GPL-2.0-or-later

package maps

import (
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"

	"q3world/bsp"
	"q3world/conlog"
	"q3world/filesystem"
)

type Map struct {
	ID   string
	Name string
}

var (
	Q3DM0  = Map{"q3dm0", "Introduction"}
	Q3DM1  = Map{"q3dm1", "Arena Gate"}
	Q3DM2  = Map{"q3dm2", "House of Pain"}
	Q3DM3  = Map{"q3dm3", "Arena of Death"}
	Q3DM4  = Map{"q3dm4", "The Place of Many Deaths"}
	Q3DM5  = Map{"q3dm5", "The Forgotten Place"}
	Q3DM6  = Map{"q3dm6", "The Camping Grounds"}
	Q3DM7  = Map{"q3dm7", "Temple of Retribution"}
	Q3DM8  = Map{"q3dm8", "Brimstone Abbey"}
	Q3DM9  = Map{"q3dm9", "Hero's Keep"}
	Q3DM10 = Map{"q3dm10", "The Nameless Place"}
	Q3DM11 = Map{"q3dm11", "Deva Station"}
	Q3DM12 = Map{"q3dm12", "The Dredwerkz"}
	Q3DM13 = Map{"q3dm13", "Lost World"}
	Q3DM14 = Map{"q3dm14", "Grim Dungeons"}
	Q3DM15 = Map{"q3dm15", "Demon Keep"}
	Q3DM16 = Map{"q3dm16", "The Bouncy Map"}
	Q3DM17 = Map{"q3dm17", "The Longest Yard"}
	Q3DM18 = Map{"q3dm18", "Space Chamber"}
	Q3DM19 = Map{"q3dm19", "Apocalypse Void"}

	Tourney1 = Map{"q3tourney1", "Power Station 0218"}
	Tourney2 = Map{"q3tourney2", "The Proving Grounds"}
	Tourney3 = Map{"q3tourney3", "Hell's Gate"}
	Tourney4 = Map{"q3tourney4", "Vertical Vengeance"}
	Tourney5 = Map{"q3tourney5", "Fatal Instinct"}
	Tourney6 = Map{"q3tourney6", "The Very End of You"}

	CTF1 = Map{"q3ctf1", "Dueling Keeps"}
	CTF2 = Map{"q3ctf2", "Troubled Waters"}
	CTF3 = Map{"q3ctf3", "The Stronghold"}
	CTF4 = Map{"q3ctf4", "Space CTF"}
)

type Tier struct {
	Name string
	Maps []Map
}

var (
	T0  = Tier{"Tier 0", []Map{Q3DM0}}
	T1  = Tier{"Tier 1", []Map{Q3DM1, Q3DM2, Q3DM3, Tourney1}}
	T2  = Tier{"Tier 2", []Map{Q3DM4, Q3DM5, Q3DM6, Tourney2}}
	T3  = Tier{"Tier 3", []Map{Q3DM7, Q3DM8, Q3DM9, Tourney3}}
	T4  = Tier{"Tier 4", []Map{Q3DM10, Q3DM11, Q3DM12, Tourney4}}
	T5  = Tier{"Tier 5", []Map{Q3DM13, Q3DM14, Q3DM15, Tourney5}}
	T6  = Tier{"Tier 6", []Map{Q3DM16, Q3DM17, Q3DM18, Tourney6}}
	T7  = Tier{"Tier 7", []Map{Q3DM19}}
	CTF = Tier{"Capture the Flag", []Map{CTF1, CTF2, CTF3, CTF4}}
)

func Base() []Tier {
	return []Tier{T0, T1, T2, T3, T4, T5, T6, T7, CTF}
}

// Title returns the long name of a stock map or the id itself.
func Title(id string) string {
	for _, t := range Base() {
		for _, m := range t.Maps {
			if strings.EqualFold(m.ID, id) {
				return m.Name
			}
		}
	}
	return id
}

// Path turns a map id into its name in the search path. Names with a
// directory or extension are kept.
func Path(name string) string {
	if strings.ContainsAny(name, "/\\") || filesystem.Ext(name) != "" {
		return name
	}
	return path.Join("maps", name+".bsp")
}

// Load reads a map from the local file system if name is an existing file
// and from the search path otherwise.
func Load(name string, opts bsp.LoadOptions) (*bsp.World, error) {
	var data []byte
	var err error
	if st, serr := os.Stat(name); serr == nil && !st.IsDir() {
		data, err = os.ReadFile(name)
	} else {
		data, err = filesystem.ReadFile(Path(name))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not read map %s", name)
	}
	id := filesystem.StripExt(path.Base(strings.ReplaceAll(name, "\\", "/")))
	w, err := bsp.Load(id, data, opts)
	if err != nil {
		return nil, err
	}
	conlog.Printf("loaded map %s (%s)", id, Title(id))
	return w, nil
}
