// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

// VisData is the potentially visible set as a bit matrix with one row of
// BytesPerCluster bytes per cluster.
type VisData struct {
	ClusterCount    int
	BytesPerCluster int
	Bits            []byte
}

// Visible tests the bit of column cam in row test. An empty set or a
// negative cluster is always visible.
//
// Row and column are not interchangeable for asymmetric data: the row
// is selected by the tested cluster, not by the viewer.
func (v *VisData) Visible(test, cam int) bool {
	if len(v.Bits) == 0 || test < 0 || cam < 0 {
		return true
	}
	bit := test*v.BytesPerCluster*8 + cam
	return v.Bits[bit>>3]&(1<<(bit&7)) != 0
}

// Set marks cluster test as visible from cluster cam.
func (v *VisData) Set(test, cam int) {
	bit := test*v.BytesPerCluster*8 + cam
	v.Bits[bit>>3] |= 1 << (bit & 7)
}

// NewVisData returns an empty matrix for n clusters.
func NewVisData(n int) VisData {
	bpc := (n + 7) / 8
	return VisData{
		ClusterCount:    n,
		BytesPerCluster: bpc,
		Bits:            make([]byte, n*bpc),
	}
}
